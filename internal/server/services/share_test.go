package services

import (
	"context"
	"errors"
	"testing"

	"github.com/basharkhan/brainly/internal/common"
	"github.com/basharkhan/brainly/internal/server/models"
)

func TestEnableSharing_MintsToken(t *testing.T) {
	rm := newFakeRepoManager()
	s := NewShareService(nil, rm)

	token, err := s.EnableSharing(context.Background(), "u1")
	if err != nil {
		t.Fatalf("EnableSharing error: %v", err)
	}
	if len(token) != shareTokenBytes*2 {
		t.Fatalf("expected %d-char hex token, got %q", shareTokenBytes*2, token)
	}
}

func TestEnableSharing_Idempotent(t *testing.T) {
	rm := newFakeRepoManager()
	s := NewShareService(nil, rm)

	first, err := s.EnableSharing(context.Background(), "u1")
	if err != nil {
		t.Fatalf("first EnableSharing error: %v", err)
	}
	second, err := s.EnableSharing(context.Background(), "u1")
	if err != nil {
		t.Fatalf("second EnableSharing error: %v", err)
	}
	if first != second {
		t.Fatalf("tokens differ: %q vs %q", first, second)
	}
}

func TestEnableSharing_ConcurrentMintPicksWinner(t *testing.T) {
	rm := newFakeRepoManager()
	s := NewShareService(nil, rm)

	// Simulate losing the insert race: the winner's row appears between the
	// existence check and the insert, so the first lookup misses and the
	// insert collides on the primary key.
	rm.s.byUser["u1"] = &models.ShareLink{UserID: "u1", Token: "winner"}
	rm.s.getMisses = 1
	rm.s.createErr = common.ErrAlreadyExists

	token, err := s.EnableSharing(context.Background(), "u1")
	if err != nil {
		t.Fatalf("EnableSharing error: %v", err)
	}
	if token != "winner" {
		t.Fatalf("expected winner token, got %q", token)
	}
}

func TestResolve_ReturnsOwnersContent(t *testing.T) {
	rm := newFakeRepoManager()
	shares := NewShareService(nil, rm)
	content := NewContentService(nil, rm)

	if _, err := content.Create(context.Background(), "u1", &models.Content{
		Type: "link", Title: "X", Link: "http://x", Tags: []string{"a"},
	}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	token, err := shares.EnableSharing(context.Background(), "u1")
	if err != nil {
		t.Fatalf("EnableSharing error: %v", err)
	}

	items, err := shares.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if len(items) != 1 || items[0].Title != "X" {
		t.Fatalf("unexpected resolved content: %+v", items)
	}
}

func TestResolve_UnknownToken(t *testing.T) {
	rm := newFakeRepoManager()
	s := NewShareService(nil, rm)

	_, err := s.Resolve(context.Background(), "no-such-token")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestDisableSharing_RevokesToken(t *testing.T) {
	rm := newFakeRepoManager()
	s := NewShareService(nil, rm)

	token, err := s.EnableSharing(context.Background(), "u1")
	if err != nil {
		t.Fatalf("EnableSharing error: %v", err)
	}

	if err := s.DisableSharing(context.Background(), "u1"); err != nil {
		t.Fatalf("DisableSharing error: %v", err)
	}

	if _, err := s.Resolve(context.Background(), token); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want ErrNotFound after disable, got %v", err)
	}
}

func TestDisableSharing_IdempotentWhenNeverEnabled(t *testing.T) {
	rm := newFakeRepoManager()
	s := NewShareService(nil, rm)

	if err := s.DisableSharing(context.Background(), "u1"); err != nil {
		t.Fatalf("DisableSharing error: %v", err)
	}
}
