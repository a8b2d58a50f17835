package resumes

import (
	"context"
	"errors"
	"testing"
	"time"
)

func sampleInput() Input {
	return Input{
		Title:    "Backend Engineer",
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "555-0100",
		Summary:  "Experienced engineer building web services.",
		Experiences: []Experience{
			{Company: "Acme", Position: "Engineer", Description: "Built APIs serving 1M requests."},
		},
		Skills: []Skill{{Name: "Python"}, {Name: "Django"}},
	}
}

func TestServiceCreateAndGet(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-1", sampleInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	if created.Template != "modern" {
		t.Fatalf("expected default template, got %q", created.Template)
	}

	got, err := svc.Get(ctx, "user-1", created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Backend Engineer" || len(got.Skills) != 2 {
		t.Fatalf("unexpected resume: %+v", got)
	}
}

func TestServiceCreateRequiresTitle(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	in := sampleInput()
	in.Title = "   "
	if _, err := svc.Create(context.Background(), "user-1", in); err == nil {
		t.Fatal("expected error for blank title")
	}
}

func TestServiceGetScopedToOwner(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()
	created, err := svc.Create(ctx, "user-1", sampleInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Get(ctx, "user-2", created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for other user, got %v", err)
	}
}

func TestServiceUpdateClearsCachedScore(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()
	created, err := svc.Create(ctx, "user-1", sampleInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.RecordATSScore(ctx, "user-1", created.ID, 85); err != nil {
		t.Fatalf("record score: %v", err)
	}
	got, _ := svc.Get(ctx, "user-1", created.ID)
	if got.ATSScore == nil || *got.ATSScore != 85 {
		t.Fatalf("expected cached score 85, got %v", got.ATSScore)
	}
	if got.LastATSCheck == nil {
		t.Fatal("expected last check timestamp")
	}

	in := sampleInput()
	in.Summary = "Rewritten summary."
	updated, err := svc.Update(ctx, "user-1", created.ID, in)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ATSScore != nil || updated.LastATSCheck != nil {
		t.Fatal("expected cached score cleared after content change")
	}
	if updated.Summary != "Rewritten summary." {
		t.Fatalf("unexpected summary %q", updated.Summary)
	}
}

func TestServiceListOrdersByRecency(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	clock := base
	svc.Now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	ctx := context.Background()

	first, _ := svc.Create(ctx, "user-1", sampleInput())
	second, _ := svc.Create(ctx, "user-1", sampleInput())

	list, err := svc.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 resumes, got %d", len(list))
	}
	if list[0].ID != second.ID || list[1].ID != first.ID {
		t.Fatal("expected most recently updated first")
	}
}

func TestServiceDelete(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()
	created, _ := svc.Create(ctx, "user-1", sampleInput())

	if err := svc.Delete(ctx, "user-1", created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, "user-1", created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.Delete(ctx, "user-1", created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestSnapshotMaterializesContent(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()
	in := sampleInput()
	in.Certifications = []Certification{{Name: "CKA", Organization: "CNCF"}}
	in.Projects = []Project{{Title: "Pipeline", Description: "ETL jobs", Technologies: "Go, Postgres"}}
	created, _ := svc.Create(ctx, "user-1", in)

	_, content, err := svc.Snapshot(ctx, "user-1", created.ID)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if content.FullName != "Jane Doe" || content.Email != "jane@example.com" {
		t.Fatalf("unexpected contact fields: %+v", content)
	}
	if len(content.Experiences) != 1 || content.Experiences[0].Company != "Acme" {
		t.Fatalf("unexpected experiences: %+v", content.Experiences)
	}
	if len(content.Skills) != 2 || content.Skills[0].Name != "Python" {
		t.Fatalf("unexpected skills: %+v", content.Skills)
	}
	if len(content.Certifications) != 1 || content.Certifications[0].Organization != "CNCF" {
		t.Fatalf("unexpected certifications: %+v", content.Certifications)
	}
	if len(content.Projects) != 1 || content.Projects[0].Technologies != "Go, Postgres" {
		t.Fatalf("unexpected projects: %+v", content.Projects)
	}
}
