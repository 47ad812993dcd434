package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"inkwell-blog/app/server/constants"
	"inkwell-blog/app/server/models"
)

func TestOnlyAdminManagesPosts(t *testing.T) {
	e, _, _ := newTestApp(t)

	admin := registerUser(t, e, "admin", "admin@example.com", "secret")
	other := registerUser(t, e, "bob", "bob@example.com", "secret")

	createPost(t, e, admin, "Launch")

	form := url.Values{
		"title":    {"Sneaky"},
		"subtitle": {"s"},
		"body":     {"b"},
		"img_url":  {"http://x/y.png"},
	}

	// another authenticated user is still forbidden
	if w := doPost(t, e, "/new-post", form, other); w.Code != http.StatusForbidden {
		t.Fatalf("non-admin create: code %d", w.Code)
	}
	if w := doGet(t, e, "/new-post", other); w.Code != http.StatusForbidden {
		t.Fatalf("non-admin form: code %d", w.Code)
	}
	if w := doPost(t, e, "/edit-post/1", form, other); w.Code != http.StatusForbidden {
		t.Fatalf("non-admin edit: code %d", w.Code)
	}
	if w := doGet(t, e, "/delete/1", other); w.Code != http.StatusForbidden {
		t.Fatalf("non-admin delete: code %d", w.Code)
	}

	// anonymous likewise
	if w := doPost(t, e, "/new-post", form); w.Code != http.StatusForbidden {
		t.Fatalf("anonymous create: code %d", w.Code)
	}
}

func TestDuplicateTitleRejected(t *testing.T) {
	e, a, _ := newTestApp(t)

	admin := registerUser(t, e, "admin", "admin@example.com", "secret")

	createPost(t, e, admin, "Example")

	w := doPost(t, e, "/new-post", url.Values{
		"title":    {"Example"},
		"subtitle": {"another"},
		"body":     {"other body"},
		"img_url":  {"http://x/y.png"},
	}, admin)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate title: code %d", w.Code)
	}

	var count int64
	if err := a.db.Model(&models.BlogPost{}).Where("title = ?", "Example").Count(&count).Error; err != nil {
		t.Fatalf("count posts: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 post titled Example, got %d", count)
	}
}

func TestDeletedTitleCanBeReused(t *testing.T) {
	e, a, _ := newTestApp(t)

	admin := registerUser(t, e, "admin", "admin@example.com", "secret")
	bob := registerUser(t, e, "bob", "bob@example.com", "secret")

	createPost(t, e, admin, "Example")
	if w := doPost(t, e, "/post/1", url.Values{"comment": {"gone soon"}}, bob); w.Code != http.StatusSeeOther {
		t.Fatalf("comment: code %d", w.Code)
	}

	if w := doGet(t, e, "/delete/1", admin); w.Code != http.StatusSeeOther {
		t.Fatalf("delete post: code %d", w.Code)
	}

	// no soft-deleted rows may linger to hold the unique title
	var posts, comments int64
	if err := a.db.Unscoped().Model(&models.BlogPost{}).Count(&posts).Error; err != nil {
		t.Fatalf("count posts: %v", err)
	}
	if err := a.db.Unscoped().Model(&models.Comment{}).Count(&comments).Error; err != nil {
		t.Fatalf("count comments: %v", err)
	}
	if posts != 0 || comments != 0 {
		t.Fatalf("rows survived deletion: %d posts, %d comments", posts, comments)
	}

	// the freed title is usable again
	createPost(t, e, admin, "Example")
}

func TestEditToDuplicateTitleRejected(t *testing.T) {
	e, a, _ := newTestApp(t)

	admin := registerUser(t, e, "admin", "admin@example.com", "secret")

	createPost(t, e, admin, "First")
	createPost(t, e, admin, "Second")

	w := doPost(t, e, "/edit-post/2", url.Values{
		"title":    {"First"},
		"subtitle": {"renamed"},
		"body":     {"renamed body"},
		"img_url":  {"http://x/y.png"},
	}, admin)
	if w.Code != http.StatusConflict {
		t.Fatalf("rename to taken title: code %d", w.Code)
	}

	var got models.BlogPost
	if err := a.db.First(&got, "id = ?", 2).Error; err != nil {
		t.Fatalf("reload post: %v", err)
	}
	if got.Title != "Second" {
		t.Fatalf("title changed despite conflict: %q", got.Title)
	}
}

func TestIndexListsNewPost(t *testing.T) {
	e, _, _ := newTestApp(t)

	admin := registerUser(t, e, "admin", "admin@example.com", "secret")
	createPost(t, e, admin, "Launch")

	w := doGet(t, e, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("index: code %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Launch") {
		t.Fatal("index missing post title")
	}
	if !strings.Contains(body, time.Now().Format(constants.PostDateFormat)) {
		t.Fatal("index missing today's date stamp")
	}
	if !strings.Contains(body, "admin") {
		t.Fatal("index missing author name")
	}
}

func TestEditKeepsDateAndReassignsAuthor(t *testing.T) {
	e, a, _ := newTestApp(t)

	admin := registerUser(t, e, "admin", "admin@example.com", "secret")
	registerUser(t, e, "bob", "bob@example.com", "secret")

	// post originally authored by bob (id 2), planted directly
	post := models.BlogPost{
		Title:    "Old Title",
		Subtitle: "old",
		Date:     "January 01, 2020",
		Body:     "old body",
		ImgURL:   "http://x/old.png",
		AuthorID: 2,
	}
	if err := a.db.Create(&post).Error; err != nil {
		t.Fatalf("plant post: %v", err)
	}

	w := doPost(t, e, "/edit-post/1", url.Values{
		"title":    {"New Title"},
		"subtitle": {"new"},
		"body":     {"new body"},
		"img_url":  {"http://x/new.png"},
	}, admin)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("edit: code %d", w.Code)
	}

	var got models.BlogPost
	if err := a.db.First(&got, "id = ?", post.ID).Error; err != nil {
		t.Fatalf("reload post: %v", err)
	}
	if got.Title != "New Title" || got.Body != "new body" {
		t.Fatalf("edit did not apply: %+v", got)
	}
	if got.AuthorID != models.AdminUserID {
		t.Fatalf("author not reassigned to editor: %d", got.AuthorID)
	}
	if got.Date != "January 01, 2020" {
		t.Fatalf("creation date changed: %q", got.Date)
	}
}

func TestDeletePostCascadesComments(t *testing.T) {
	e, a, _ := newTestApp(t)

	admin := registerUser(t, e, "admin", "admin@example.com", "secret")
	bob := registerUser(t, e, "bob", "bob@example.com", "secret")

	createPost(t, e, admin, "Doomed")
	if w := doPost(t, e, "/post/1", url.Values{"comment": {"nice one"}}, bob); w.Code != http.StatusSeeOther {
		t.Fatalf("comment: code %d", w.Code)
	}

	if w := doGet(t, e, "/delete/1", admin); w.Code != http.StatusSeeOther {
		t.Fatalf("delete post: code %d", w.Code)
	}

	var posts, comments int64
	if err := a.db.Model(&models.BlogPost{}).Count(&posts).Error; err != nil {
		t.Fatalf("count posts: %v", err)
	}
	if err := a.db.Model(&models.Comment{}).Where("post_id = ?", 1).Count(&comments).Error; err != nil {
		t.Fatalf("count comments: %v", err)
	}
	if posts != 0 || comments != 0 {
		t.Fatalf("expected cascade, got %d posts and %d comments", posts, comments)
	}
}

func TestDeleteNonexistentPost(t *testing.T) {
	e, _, _ := newTestApp(t)

	admin := registerUser(t, e, "admin", "admin@example.com", "secret")

	if w := doGet(t, e, "/delete/99", admin); w.Code != http.StatusNotFound {
		t.Fatalf("delete missing post: code %d", w.Code)
	}
}
