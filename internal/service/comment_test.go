package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/Debasmita-Giri/blog-api/internal/domain/models"
	"github.com/Debasmita-Giri/blog-api/internal/domain/services"
)

const (
	commentPostAuthorID = "00000000-0000-0000-0000-00000000000a"
	commentAuthorID     = "00000000-0000-0000-0000-00000000000b"
	bystanderID         = "00000000-0000-0000-0000-00000000000c"
)

type commentFixture struct {
	commentRepo *fakeCommentRepo
	postRepo    *fakePostRepo
	svc         services.CommentService
	post        *models.Post
	comment     *models.Comment
}

func newCommentFixture() *commentFixture {
	postRepo := newFakePostRepo()
	post := postRepo.add(models.Post{AuthorID: commentPostAuthorID, Title: "T", Content: "C", Status: "published"})

	commentRepo := newFakeCommentRepo()
	comment := commentRepo.add(models.Comment{PostID: post.ID, AuthorID: commentAuthorID, Content: "first"})
	commentRepo.postAuthors[post.ID] = commentPostAuthorID

	return &commentFixture{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		svc:         NewCommentService(commentRepo, postRepo, fakeTxManager{}, testLogger()),
		post:        post,
		comment:     comment,
	}
}

func TestCreateComment(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed post id", func(t *testing.T) {
		f := newCommentFixture()
		_, err := f.svc.CreateComment(ctx, commentAuthorID, &services.CreateCommentRequest{PostID: "nope", Content: "hi"})
		assertHTTPError(t, err, http.StatusBadRequest, "Invalid post ID")
	})

	t.Run("post checked before content", func(t *testing.T) {
		f := newCommentFixture()
		req := &services.CreateCommentRequest{PostID: "10000000-0000-0000-0000-000000009999", Content: ""}
		_, err := f.svc.CreateComment(ctx, commentAuthorID, req)
		assertHTTPError(t, err, http.StatusNotFound, "Post not found")
	})

	t.Run("blank content", func(t *testing.T) {
		f := newCommentFixture()
		_, err := f.svc.CreateComment(ctx, commentAuthorID, &services.CreateCommentRequest{PostID: f.post.ID, Content: "  "})
		assertHTTPError(t, err, http.StatusBadRequest, "Content is required")
	})

	t.Run("content trimmed on create", func(t *testing.T) {
		f := newCommentFixture()
		comment, err := f.svc.CreateComment(ctx, commentAuthorID, &services.CreateCommentRequest{PostID: f.post.ID, Content: "  nice post  "})
		if err != nil {
			t.Fatalf("CreateComment: %v", err)
		}
		if comment.Content != "nice post" {
			t.Errorf("content = %q", comment.Content)
		}
		if comment.ID == "" {
			t.Error("expected generated ID")
		}
	})
}

func TestListCommentsByPost(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown post", func(t *testing.T) {
		f := newCommentFixture()
		_, err := f.svc.ListCommentsByPost(ctx, "10000000-0000-0000-0000-000000009999")
		assertHTTPError(t, err, http.StatusNotFound, "Post not found")
	})

	t.Run("post with no comments", func(t *testing.T) {
		f := newCommentFixture()
		bare := f.postRepo.add(models.Post{AuthorID: commentPostAuthorID, Title: "B", Content: "C", Status: "published"})
		_, err := f.svc.ListCommentsByPost(ctx, bare.ID)
		assertHTTPError(t, err, http.StatusNotFound, "No comments found for this post")
	})

	t.Run("returns comments", func(t *testing.T) {
		f := newCommentFixture()
		comments, err := f.svc.ListCommentsByPost(ctx, f.post.ID)
		if err != nil {
			t.Fatalf("ListCommentsByPost: %v", err)
		}
		if len(comments) != 1 || comments[0].Content != "first" {
			t.Errorf("comments = %+v", comments)
		}
	})
}

func TestGetComment(t *testing.T) {
	f := newCommentFixture()
	ctx := context.Background()

	if _, err := f.svc.GetComment(ctx, "xyz"); err == nil || err.Error() != "Invalid comment ID" {
		t.Errorf("malformed id: got %v", err)
	}

	_, err := f.svc.GetComment(ctx, "20000000-0000-0000-0000-000000009999")
	assertHTTPError(t, err, http.StatusNotFound, "Comment not found")

	comment, err := f.svc.GetComment(ctx, f.comment.ID)
	if err != nil {
		t.Fatalf("GetComment: %v", err)
	}
	if comment.Content != "first" {
		t.Errorf("content = %q", comment.Content)
	}
}

func TestUpdateComment(t *testing.T) {
	ctx := context.Background()
	author := models.Identity{UserID: commentAuthorID, Role: "user"}

	t.Run("content validated before existence", func(t *testing.T) {
		f := newCommentFixture()
		req := &services.UpdateCommentRequest{Content: "  "}
		_, err := f.svc.UpdateComment(ctx, "20000000-0000-0000-0000-000000009999", author, req)
		assertHTTPError(t, err, http.StatusBadRequest, "Content is required")
	})

	t.Run("not found", func(t *testing.T) {
		f := newCommentFixture()
		req := &services.UpdateCommentRequest{Content: "edited"}
		_, err := f.svc.UpdateComment(ctx, "20000000-0000-0000-0000-000000009999", author, req)
		assertHTTPError(t, err, http.StatusNotFound, "Comment not found")
	})

	t.Run("only the author or an admin may edit", func(t *testing.T) {
		f := newCommentFixture()
		req := &services.UpdateCommentRequest{Content: "edited"}

		// The post author has no edit rights over others' comments.
		_, err := f.svc.UpdateComment(ctx, f.comment.ID, models.Identity{UserID: commentPostAuthorID, Role: "user"}, req)
		assertHTTPError(t, err, http.StatusForbidden, "You are not authorized to update this comment")

		updated, err := f.svc.UpdateComment(ctx, f.comment.ID, author, req)
		if err != nil {
			t.Fatalf("author edit: %v", err)
		}
		if updated.Content != "edited" {
			t.Errorf("content = %q", updated.Content)
		}

		adminReq := &services.UpdateCommentRequest{Content: "moderated"}
		updated, err = f.svc.UpdateComment(ctx, f.comment.ID, models.Identity{UserID: bystanderID, Role: "admin"}, adminReq)
		if err != nil {
			t.Fatalf("admin edit: %v", err)
		}
		if updated.Content != "moderated" {
			t.Errorf("content = %q", updated.Content)
		}
	})
}

func TestDeleteComment(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		caller    models.Identity
		wantOK    bool
	}{
		{name: "comment author", caller: models.Identity{UserID: commentAuthorID, Role: "user"}, wantOK: true},
		{name: "post author moderates own post", caller: models.Identity{UserID: commentPostAuthorID, Role: "user"}, wantOK: true},
		{name: "admin", caller: models.Identity{UserID: bystanderID, Role: "admin"}, wantOK: true},
		{name: "unrelated user", caller: models.Identity{UserID: bystanderID, Role: "user"}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCommentFixture()
			err := f.svc.DeleteComment(ctx, f.comment.ID, tt.caller)
			if tt.wantOK {
				if err != nil {
					t.Fatalf("DeleteComment: %v", err)
				}
				if _, ok := f.commentRepo.comments[f.comment.ID]; ok {
					t.Error("comment still present")
				}
				return
			}
			assertHTTPError(t, err, http.StatusForbidden, "You are not authorized to delete this comment")
		})
	}

	t.Run("not found", func(t *testing.T) {
		f := newCommentFixture()
		err := f.svc.DeleteComment(ctx, "20000000-0000-0000-0000-000000009999", models.Identity{UserID: bystanderID, Role: "admin"})
		assertHTTPError(t, err, http.StatusNotFound, "Comment not found")
	})
}
