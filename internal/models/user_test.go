package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestFilterUserUpdates(t *testing.T) {
	fields := map[string]interface{}{
		"username":  "joa",
		"password":  "123456",
		"city":      "Accra",
		"isAdmin":   true,
		"userId":    "abc",
		"followers": []string{"x"},
		"createdAt": "2020-01-01",
	}

	filtered := FilterUserUpdates(fields)

	for _, key := range []string{"username", "password", "city"} {
		if _, ok := filtered[key]; !ok {
			t.Errorf("mutable field %q was dropped", key)
		}
	}
	for _, key := range []string{"isAdmin", "userId", "followers", "createdAt"} {
		if _, ok := filtered[key]; ok {
			t.Errorf("protected field %q passed the filter", key)
		}
	}
}

func TestFilterPostUpdates(t *testing.T) {
	filtered := FilterPostUpdates(map[string]interface{}{
		"desc":   "new",
		"img":    "pic.png",
		"userId": "abc",
		"likes":  []string{"x"},
	})

	if len(filtered) != 2 {
		t.Errorf("expected 2 fields, got %d", len(filtered))
	}
	if _, ok := filtered["userId"]; ok {
		t.Error("owner reference passed the filter")
	}
}

func TestPublicUserOmitsCredential(t *testing.T) {
	user := &User{
		Username:   "john",
		Email:      "john@gmail.com",
		Password:   "$2a$10$hash",
		Followers:  []string{},
		Followings: []string{},
	}

	raw, err := json.Marshal(user.Public())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	body := string(raw)
	if strings.Contains(body, "password") {
		t.Error("profile view leaks the password field")
	}
	if strings.Contains(body, "updatedAt") {
		t.Error("profile view leaks updatedAt")
	}
	if !strings.Contains(body, `"username":"john"`) {
		t.Error("profile view lost the username")
	}
}

func TestHasFollower(t *testing.T) {
	user := &User{Followers: []string{"a", "b"}}
	if !user.HasFollower("a") {
		t.Error("existing follower not reported")
	}
	if user.HasFollower("c") {
		t.Error("absent follower reported")
	}
}
