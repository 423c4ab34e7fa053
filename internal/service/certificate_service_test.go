package service

import (
	"courseflow_backend/internal/model"
	"courseflow_backend/internal/repository"
	"courseflow_backend/internal/util"
	"context"
	"errors"
	"testing"
)

func newTestCertificateService(courses ...model.Course) (*CertificateService, *ProgressService) {
	catalog := repository.NewCatalogRepositoryFromCourses(courses)
	progress := newTestProgressService()
	certs := NewCertificateService(catalog, progress, NewLessonSequencer())
	return certs, progress
}

func TestRequestCertificateRequiresFullCompletion(t *testing.T) {
	certs, progress := newTestCertificateService(quizCourse())
	ctx := context.Background()

	progress.Enroll(ctx, 1, "course-1")
	progress.CompleteLesson(ctx, 1, "course-1", "l1")

	if _, err := certs.Request(ctx, 1, "course-1"); !errors.Is(err, util.ErrCourseIncomplete) {
		t.Fatalf("expected ErrCourseIncomplete, got %v", err)
	}

	progress.CompleteLesson(ctx, 1, "course-1", "l2")
	record, err := certs.Request(ctx, 1, "course-1")
	if err != nil {
		t.Fatalf("Request returned error: %v", err)
	}
	if !record.CertificateEarned {
		t.Fatal("certificate should be earned after completing all lessons")
	}
}

func TestRequestCertificateIsIdempotent(t *testing.T) {
	certs, progress := newTestCertificateService(quizCourse())
	ctx := context.Background()

	progress.Enroll(ctx, 1, "course-1")
	progress.CompleteLesson(ctx, 1, "course-1", "l1")
	progress.CompleteLesson(ctx, 1, "course-1", "l2")

	if _, err := certs.Request(ctx, 1, "course-1"); err != nil {
		t.Fatalf("Request returned error: %v", err)
	}
	record, err := certs.Request(ctx, 1, "course-1")
	if err != nil {
		t.Fatalf("repeated Request returned error: %v", err)
	}
	if !record.CertificateEarned {
		t.Fatal("certificate flag must stay set")
	}
}

func TestRequestCertificateRequiresEnrollment(t *testing.T) {
	certs, _ := newTestCertificateService(quizCourse())

	if _, err := certs.Request(context.Background(), 1, "course-1"); !errors.Is(err, util.ErrNotEnrolled) {
		t.Fatalf("expected ErrNotEnrolled, got %v", err)
	}
}

func TestListCertificates(t *testing.T) {
	certs, progress := newTestCertificateService(quizCourse())
	ctx := context.Background()

	progress.Enroll(ctx, 1, "course-1")
	progress.Enroll(ctx, 1, "course-2") // 无证书

	list, err := certs.List(ctx, 1)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected no certificates yet, got %d", len(list))
	}

	progress.EarnCertificate(ctx, 1, "course-1")
	list, err = certs.List(ctx, 1)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 certificate, got %d", len(list))
	}
	if list[0].CourseID != "course-1" || list[0].CourseTitle != "Test Course" {
		t.Fatalf("unexpected certificate: %+v", list[0])
	}
}

func TestListKeepsCertificateForDelistedCourse(t *testing.T) {
	certs, progress := newTestCertificateService(quizCourse())
	ctx := context.Background()

	// course-2 不在目录里，但证书仍然有效
	progress.Enroll(ctx, 1, "course-2")
	progress.EarnCertificate(ctx, 1, "course-2")

	list, err := certs.List(ctx, 1)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(list) != 1 || list[0].CourseID != "course-2" {
		t.Fatalf("expected delisted-course certificate, got %+v", list)
	}
	if list[0].CourseTitle != "" {
		t.Fatalf("delisted course has no catalog title, got %q", list[0].CourseTitle)
	}
}
