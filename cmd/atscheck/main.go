package main

// Score a resume against a job description from the command line:
//   go run ./cmd/atscheck -resume resume.json -jd jd.txt
//
// The resume file holds the JSON content snapshot; the jd file holds
// the raw job description text. The detailed report is printed as JSON.

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"ats-backend/internal/ats"
)

func main() {
	resumePath := flag.String("resume", "", "path to resume content JSON")
	jdPath := flag.String("jd", "", "path to job description text")
	flag.Parse()

	if *resumePath == "" || *jdPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	resumeRaw, err := os.ReadFile(*resumePath)
	if err != nil {
		log.Fatalf("read resume: %v", err)
	}
	var content ats.ResumeContent
	if err := json.Unmarshal(resumeRaw, &content); err != nil {
		log.Fatalf("parse resume: %v", err)
	}

	jdRaw, err := os.ReadFile(*jdPath)
	if err != nil {
		log.Fatalf("read job description: %v", err)
	}

	analyzer := ats.New(ats.DefaultConfig())
	result := analyzer.DetailedReport(content, string(jdRaw))

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("encode result: %v", err)
	}
	fmt.Println(string(out))
}
