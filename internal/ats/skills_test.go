package ats

import (
	"reflect"
	"testing"
)

func TestRequiredSkillsPatternOrderAndDedupe(t *testing.T) {
	a := New(DefaultConfig())

	got := a.RequiredSkills("We use Python, python scripts, Machine Learning and CI/CD daily.")
	want := []string{"python", "machine learning", "ci/cd"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRequiredSkillsEmptyDescription(t *testing.T) {
	a := New(DefaultConfig())

	if got := a.RequiredSkills(""); len(got) != 0 {
		t.Fatalf("expected no skills, got %v", got)
	}
}

func TestSkillMatchSubstringContainment(t *testing.T) {
	a := New(DefaultConfig())

	got := a.SkillMatch(
		"experience with machine learning pipelines",
		"Machine Learning and React required",
	)

	if !reflect.DeepEqual(got.Found, []string{"machine learning"}) {
		t.Fatalf("expected found [machine learning], got %v", got.Found)
	}
	if !reflect.DeepEqual(got.Missing, []string{"react"}) {
		t.Fatalf("expected missing [react], got %v", got.Missing)
	}
	if got.Score != 50 {
		t.Fatalf("expected score 50, got %d", got.Score)
	}
}

func TestSkillMatchVacuouslySatisfied(t *testing.T) {
	a := New(DefaultConfig())

	got := a.SkillMatch("any resume text", "we need a friendly colleague")
	if got.Score != 100 {
		t.Fatalf("expected score 100 with no required skills, got %d", got.Score)
	}
	if len(got.Found) != 0 || len(got.Missing) != 0 {
		t.Fatalf("expected empty skill lists, got found=%v missing=%v", got.Found, got.Missing)
	}
}

func TestSkillMatchLowercasesResumeText(t *testing.T) {
	a := New(DefaultConfig())

	got := a.SkillMatch("Deployed on AWS with Docker", "aws docker kubernetes")
	if !reflect.DeepEqual(got.Found, []string{"aws", "docker"}) {
		t.Fatalf("expected found [aws docker], got %v", got.Found)
	}
	if !reflect.DeepEqual(got.Missing, []string{"kubernetes"}) {
		t.Fatalf("expected missing [kubernetes], got %v", got.Missing)
	}
	if got.Score != 67 {
		t.Fatalf("expected score 67, got %d", got.Score)
	}
}
