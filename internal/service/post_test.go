package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/Debasmita-Giri/blog-api/internal/domain/models"
	"github.com/Debasmita-Giri/blog-api/internal/domain/services"
)

func intPtr(n int) *int { return &n }

func newTestPostService(repo *fakePostRepo) services.PostService {
	return NewPostService(repo, fakeTxManager{}, testLogger())
}

const testAuthorID = "00000000-0000-0000-0000-000000000001"

func TestCreatePost(t *testing.T) {
	tests := []struct {
		name        string
		req         services.CreatePostRequest
		wantStatus  int
		wantMessage string
		wantPostStatus string
	}{
		{
			name:           "valid published post",
			req:            services.CreatePostRequest{Title: "Hello", Content: "World", Status: "published"},
			wantPostStatus: "published",
		},
		{
			name:           "status defaults to draft",
			req:            services.CreatePostRequest{Title: "Hello", Content: "World"},
			wantPostStatus: "draft",
		},
		{
			name:        "missing title",
			req:         services.CreatePostRequest{Content: "World"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Title, content are required",
		},
		{
			name:        "whitespace-only content",
			req:         services.CreatePostRequest{Title: "Hello", Content: "  \t "},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Title, content are required",
		},
		{
			name:        "unknown status",
			req:         services.CreatePostRequest{Title: "Hello", Content: "World", Status: "archived"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid Post status specified",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestPostService(newFakePostRepo())

			post, err := svc.CreatePost(context.Background(), testAuthorID, &tt.req)
			if tt.wantStatus != 0 {
				assertHTTPError(t, err, tt.wantStatus, tt.wantMessage)
				return
			}
			if err != nil {
				t.Fatalf("CreatePost: %v", err)
			}
			if post.AuthorID != testAuthorID {
				t.Errorf("author = %q, want %q", post.AuthorID, testAuthorID)
			}
			if post.Status != tt.wantPostStatus {
				t.Errorf("status = %q, want %q", post.Status, tt.wantPostStatus)
			}
		})
	}
}

func TestListPostsEmpty(t *testing.T) {
	svc := newTestPostService(newFakePostRepo())
	_, err := svc.ListPosts(context.Background())
	assertHTTPError(t, err, http.StatusNotFound, "No posts found")
}

func TestGetPost(t *testing.T) {
	repo := newFakePostRepo()
	existing := repo.add(models.Post{AuthorID: testAuthorID, Title: "T", Content: "C", Status: "draft"})
	svc := newTestPostService(repo)
	ctx := context.Background()

	if _, err := svc.GetPost(ctx, "42"); err == nil || err.Error() != "Invalid post ID" {
		t.Errorf("malformed id: got %v", err)
	}

	_, err := svc.GetPost(ctx, "10000000-0000-0000-0000-000000009999")
	assertHTTPError(t, err, http.StatusNotFound, "Post not found")

	post, err := svc.GetPost(ctx, existing.ID)
	if err != nil {
		t.Fatalf("GetPost: %v", err)
	}
	if post.Title != "T" {
		t.Errorf("title = %q", post.Title)
	}
}

func TestListPostsByCategory(t *testing.T) {
	repo := newFakePostRepo()
	repo.add(models.Post{AuthorID: testAuthorID, Title: "In", Content: "C", Status: "published", CategoryID: intPtr(7)})
	repo.add(models.Post{AuthorID: testAuthorID, Title: "Out", Content: "C", Status: "published", CategoryID: intPtr(8)})
	svc := newTestPostService(repo)
	ctx := context.Background()

	if _, err := svc.ListPostsByCategory(ctx, "abc"); err == nil || err.Error() != "Invalid post ID" {
		t.Errorf("non-numeric id: got %v", err)
	}

	_, err := svc.ListPostsByCategory(ctx, "99")
	assertHTTPError(t, err, http.StatusNotFound, "No Posts found for specified category")

	posts, err := svc.ListPostsByCategory(ctx, "7")
	if err != nil {
		t.Fatalf("ListPostsByCategory: %v", err)
	}
	if len(posts) != 1 || posts[0].Title != "In" {
		t.Errorf("posts = %+v", posts)
	}
}

func TestUpdatePost(t *testing.T) {
	otherID := "00000000-0000-0000-0000-000000000002"

	setup := func() (*fakePostRepo, services.PostService, *models.Post) {
		repo := newFakePostRepo()
		post := repo.add(models.Post{AuthorID: testAuthorID, Title: "T", Content: "C", Status: "draft"})
		return repo, newTestPostService(repo), post
	}
	author := models.Identity{UserID: testAuthorID, Role: "user"}
	ctx := context.Background()

	t.Run("not found checked before validation", func(t *testing.T) {
		_, svc, _ := setup()
		err := svc.UpdatePost(ctx, "10000000-0000-0000-0000-000000009999", author, &services.UpdatePostRequest{})
		assertHTTPError(t, err, http.StatusNotFound, "Post not found for update")
	})

	t.Run("non-author rejected before validation", func(t *testing.T) {
		_, svc, post := setup()
		err := svc.UpdatePost(ctx, post.ID, models.Identity{UserID: otherID, Role: "user"}, &services.UpdatePostRequest{})
		assertHTTPError(t, err, http.StatusForbidden, "You are not authorized to update this post")
	})

	t.Run("no fields provided", func(t *testing.T) {
		_, svc, post := setup()
		err := svc.UpdatePost(ctx, post.ID, author, &services.UpdatePostRequest{})
		assertHTTPError(t, err, http.StatusBadRequest, "At least one of title, content or status must be provided and non-blank for update")
	})

	t.Run("supplied empty title is blank", func(t *testing.T) {
		_, svc, post := setup()
		req := &services.UpdatePostRequest{Title: strPtr(""), Content: strPtr("new")}
		err := svc.UpdatePost(ctx, post.ID, author, req)
		assertHTTPError(t, err, http.StatusBadRequest, "title cannot be blank")
	})

	t.Run("whitespace-only title is blank", func(t *testing.T) {
		_, svc, post := setup()
		req := &services.UpdatePostRequest{Title: strPtr("   ")}
		err := svc.UpdatePost(ctx, post.ID, author, req)
		assertHTTPError(t, err, http.StatusBadRequest, "title cannot be blank")
	})

	t.Run("invalid status", func(t *testing.T) {
		_, svc, post := setup()
		err := svc.UpdatePost(ctx, post.ID, author, &services.UpdatePostRequest{Status: strPtr("archived")})
		assertHTTPError(t, err, http.StatusBadRequest, "Invalid Post status specified")
	})

	t.Run("author updates fields", func(t *testing.T) {
		repo, svc, post := setup()
		req := &services.UpdatePostRequest{Title: strPtr("New Title"), Status: strPtr("published"), CategoryID: intPtr(3)}
		if err := svc.UpdatePost(ctx, post.ID, author, req); err != nil {
			t.Fatalf("UpdatePost: %v", err)
		}
		stored := repo.posts[post.ID]
		if stored.Title != "New Title" || stored.Status != "published" {
			t.Errorf("stored = %+v", stored)
		}
		if stored.Content != "C" {
			t.Errorf("content changed to %q", stored.Content)
		}
		if stored.CategoryID == nil || *stored.CategoryID != 3 {
			t.Errorf("category = %v", stored.CategoryID)
		}
	})

	t.Run("admin may update any post", func(t *testing.T) {
		_, svc, post := setup()
		admin := models.Identity{UserID: otherID, Role: "admin"}
		if err := svc.UpdatePost(ctx, post.ID, admin, &services.UpdatePostRequest{Title: strPtr("Moderated")}); err != nil {
			t.Fatalf("UpdatePost: %v", err)
		}
	})
}

func TestDeletePost(t *testing.T) {
	repo := newFakePostRepo()
	post := repo.add(models.Post{AuthorID: testAuthorID, Title: "T", Content: "C", Status: "draft"})
	svc := newTestPostService(repo)
	ctx := context.Background()

	err := svc.DeletePost(ctx, post.ID, models.Identity{UserID: "00000000-0000-0000-0000-000000000002", Role: "user"})
	assertHTTPError(t, err, http.StatusForbidden, "You are not authorized to delete this post")

	if err := svc.DeletePost(ctx, post.ID, models.Identity{UserID: testAuthorID, Role: "user"}); err != nil {
		t.Fatalf("DeletePost: %v", err)
	}

	err = svc.DeletePost(ctx, post.ID, models.Identity{UserID: testAuthorID, Role: "user"})
	assertHTTPError(t, err, http.StatusNotFound, "Post not found")
}
