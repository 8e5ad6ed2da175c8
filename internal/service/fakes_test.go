package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Debasmita-Giri/blog-api/internal/domain"
	"github.com/Debasmita-Giri/blog-api/internal/domain/models"
	"github.com/Debasmita-Giri/blog-api/internal/domain/repositories"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeTxManager runs the function directly; the services under test only
// care that the sequence inside it executes.
type fakeTxManager struct{}

func (fakeTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	return fn(ctx)
}

// fakeIssuer records the identity it signed for.
type fakeIssuer struct {
	issued *models.Identity
	err    error
}

func (f *fakeIssuer) Issue(identity models.Identity) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.issued = &identity
	return "token-for-" + identity.Username, nil
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users  map[string]*models.User
	nextID int
	err    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) add(user models.User) *models.User {
	if user.ID == "" {
		r.nextID++
		user.ID = fmt.Sprintf("00000000-0000-0000-0000-%012d", r.nextID)
	}
	u := user
	r.users[u.ID] = &u
	return &u
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if r.err != nil {
		return r.err
	}
	var dup []string
	for _, existing := range r.users {
		if existing.Username == user.Username {
			dup = append(dup, "username")
		}
		if existing.Email == user.Email {
			dup = append(dup, "email")
		}
	}
	if len(dup) > 0 {
		return domain.NewConflictError(dup...)
	}
	*user = *r.add(*user)
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(ctx context.Context) ([]models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []models.User{}
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, id string, patch repositories.UserPatch) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return 0, nil
	}
	if patch.Username != nil {
		u.Username = *patch.Username
	}
	if patch.Password != nil {
		u.Password = *patch.Password
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Role != nil {
		u.Role = *patch.Role
	}
	return 1, nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	if _, ok := r.users[id]; !ok {
		return 0, nil
	}
	delete(r.users, id)
	return 1, nil
}

// fakePostRepo is an in-memory PostRepository.
type fakePostRepo struct {
	posts  map[string]*models.Post
	nextID int
	err    error
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[string]*models.Post{}}
}

func (r *fakePostRepo) add(post models.Post) *models.Post {
	if post.ID == "" {
		r.nextID++
		post.ID = fmt.Sprintf("10000000-0000-0000-0000-%012d", r.nextID)
	}
	p := post
	r.posts[p.ID] = &p
	return &p
}

func (r *fakePostRepo) Create(ctx context.Context, post *models.Post) error {
	if r.err != nil {
		return r.err
	}
	*post = *r.add(*post)
	return nil
}

func (r *fakePostRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.posts[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (r *fakePostRepo) List(ctx context.Context) ([]models.Post, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []models.Post{}
	for _, p := range r.posts {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePostRepo) ListByCategory(ctx context.Context, categoryID int) ([]models.Post, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []models.Post{}
	for _, p := range r.posts {
		if p.CategoryID != nil && *p.CategoryID == categoryID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePostRepo) Update(ctx context.Context, id string, patch repositories.PostPatch) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	p, ok := r.posts[id]
	if !ok {
		return 0, nil
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.CategoryID != nil {
		p.CategoryID = patch.CategoryID
	}
	return 1, nil
}

func (r *fakePostRepo) Delete(ctx context.Context, id string) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	if _, ok := r.posts[id]; !ok {
		return 0, nil
	}
	delete(r.posts, id)
	return 1, nil
}

// fakeCommentRepo is an in-memory CommentRepository. postAuthors maps
// post IDs to author IDs for the joined moderation lookup.
type fakeCommentRepo struct {
	comments    map[string]*models.Comment
	postAuthors map[string]string
	nextID      int
	err         error
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{
		comments:    map[string]*models.Comment{},
		postAuthors: map[string]string{},
	}
}

func (r *fakeCommentRepo) add(comment models.Comment) *models.Comment {
	if comment.ID == "" {
		r.nextID++
		comment.ID = fmt.Sprintf("20000000-0000-0000-0000-%012d", r.nextID)
	}
	c := comment
	r.comments[c.ID] = &c
	return &c
}

func (r *fakeCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	if r.err != nil {
		return r.err
	}
	*comment = *r.add(*comment)
	return nil
}

func (r *fakeCommentRepo) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	if r.err != nil {
		return nil, r.err
	}
	c, ok := r.comments[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	copied.PostAuthorID = ""
	return &copied, nil
}

func (r *fakeCommentRepo) GetByIDWithPostAuthor(ctx context.Context, id string) (*models.Comment, error) {
	if r.err != nil {
		return nil, r.err
	}
	c, ok := r.comments[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	copied.PostAuthorID = r.postAuthors[c.PostID]
	return &copied, nil
}

func (r *fakeCommentRepo) ListByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []models.Comment{}
	for _, c := range r.comments {
		if c.PostID == postID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) UpdateContent(ctx context.Context, id, content string) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	c, ok := r.comments[id]
	if !ok {
		return 0, nil
	}
	c.Content = content
	return 1, nil
}

func (r *fakeCommentRepo) Delete(ctx context.Context, id string) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	if _, ok := r.comments[id]; !ok {
		return 0, nil
	}
	delete(r.comments, id)
	return 1, nil
}

// fakeCategoryRepo is an in-memory CategoryRepository.
type fakeCategoryRepo struct {
	categories map[int]*models.Category
	nextID     int
	err        error
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[int]*models.Category{}}
}

func (r *fakeCategoryRepo) add(category models.Category) *models.Category {
	if category.ID == 0 {
		r.nextID++
		category.ID = r.nextID
	}
	c := category
	r.categories[c.ID] = &c
	return &c
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *models.Category) error {
	if r.err != nil {
		return r.err
	}
	for _, existing := range r.categories {
		if strings.EqualFold(existing.Name, category.Name) {
			return domain.NewConflictError("name")
		}
	}
	*category = *r.add(*category)
	return nil
}

func (r *fakeCategoryRepo) GetByID(ctx context.Context, id int) (*models.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCategoryRepo) GetByName(ctx context.Context, name string) (*models.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, c := range r.categories {
		if c.Name == name {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) List(ctx context.Context) ([]models.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []models.Category{}
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(ctx context.Context, id int, patch repositories.CategoryPatch) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	c, ok := r.categories[id]
	if !ok {
		return 0, nil
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Description != nil {
		c.Description = *patch.Description
	}
	return 1, nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, id int) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	if _, ok := r.categories[id]; !ok {
		return 0, nil
	}
	delete(r.categories, id)
	return 1, nil
}
