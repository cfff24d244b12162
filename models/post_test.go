package models

import (
	"testing"
	"time"
)

func TestPostVisible(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	tolerance := 2 * time.Second
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)
	withinSkew := now.Add(time.Second)

	tests := []struct {
		name        string
		status      PostStatus
		publishedAt *time.Time
		want        bool
	}{
		{"published without date", StatusPublished, nil, true},
		{"published in the past", StatusPublished, &past, true},
		{"published within skew tolerance", StatusPublished, &withinSkew, true},
		{"published in the future", StatusPublished, &future, false},
		{"draft without date", StatusDraft, nil, false},
		{"draft with past date", StatusDraft, &past, false},
		{"archived with past date", StatusArchived, &past, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Post{Status: tt.status, PublishedAt: tt.publishedAt}
			if got := p.Visible(now, tolerance); got != tt.want {
				t.Fatalf("Visible() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPostScheduled(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name        string
		status      PostStatus
		publishedAt *time.Time
		want        bool
	}{
		{"future published post", StatusPublished, &future, true},
		{"future draft still counts", StatusDraft, &future, true},
		{"past date", StatusPublished, &past, false},
		{"no date", StatusPublished, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Post{Status: tt.status, PublishedAt: tt.publishedAt}
			if got := p.Scheduled(now); got != tt.want {
				t.Fatalf("Scheduled() = %v, want %v", got, tt.want)
			}
		})
	}
}
