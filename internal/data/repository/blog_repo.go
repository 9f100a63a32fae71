package repository

import (
	"context"
	"errors"
	"fmt"

	"realty-backend/internal/data/entity"
	"realty-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BlogFilter struct {
	ProjectID     *uuid.UUID
	Search        *string
	PublishedOnly bool
}

type BlogRepository interface {
	Create(ctx context.Context, post *entity.BlogPost) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BlogPost, error)
	FindBySlug(ctx context.Context, slug string) (*entity.BlogPost, error)
	FindAll(ctx context.Context, filter BlogFilter, limit, offset int) ([]*entity.BlogPost, error)
	Count(ctx context.Context, filter BlogFilter) (int64, error)
	Update(ctx context.Context, post *entity.BlogPost) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementViews(ctx context.Context, id uuid.UUID) (int, error)
}

type blogRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBlogRepository(db database.PgxIface, log *zap.Logger) BlogRepository {
	return &blogRepository{
		db:  db,
		log: log.With(zap.String("repository", "blog")),
	}
}

const blogSelect = `
	SELECT id, project_id, title, slug, excerpt, content, featured_image_url, video_url,
	       author, category, views, published, created_at, updated_at
	FROM blog_posts`

func (r *blogRepository) Create(ctx context.Context, post *entity.BlogPost) error {
	query := `
		INSERT INTO blog_posts (id, project_id, title, slug, excerpt, content, featured_image_url,
		                        video_url, author, category, views, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.Exec(ctx, query,
		post.ID, post.ProjectID, post.Title, post.Slug, post.Excerpt, post.Content, post.FeaturedImageURL,
		post.VideoURL, post.Author, post.Category, post.Views, post.Published, post.CreatedAt, post.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create blog post", zap.Error(err), zap.String("slug", post.Slug))
		return fmt.Errorf("create blog post %s: %w", post.Slug, err)
	}
	return nil
}

func (r *blogRepository) findOne(ctx context.Context, where string, arg any) (*entity.BlogPost, error) {
	rows, err := r.db.Query(ctx, blogSelect+` WHERE `+where, arg)
	if err != nil {
		return nil, err
	}

	post, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[entity.BlogPost])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return post, err
}

func (r *blogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BlogPost, error) {
	post, err := r.findOne(ctx, "id = $1", id)
	if err != nil {
		r.log.Error("Failed to find blog post by ID", zap.Error(err), zap.String("post_id", id.String()))
		return nil, fmt.Errorf("find blog post %s: %w", id.String(), err)
	}
	return post, nil
}

func (r *blogRepository) FindBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	post, err := r.findOne(ctx, "slug = $1", slug)
	if err != nil {
		r.log.Error("Failed to find blog post by slug", zap.Error(err), zap.String("slug", slug))
		return nil, fmt.Errorf("find blog post %s: %w", slug, err)
	}
	return post, nil
}

func blogFilter(filter BlogFilter) *queryFilter {
	f := newQueryFilter()
	if filter.PublishedOnly {
		f.and("published = true")
	}
	if filter.ProjectID != nil {
		f.and("project_id = %s", *filter.ProjectID)
	}
	if filter.Search != nil {
		f.and("(title ILIKE %[1]s ESCAPE '\\' OR content ILIKE %[1]s ESCAPE '\\' OR category ILIKE %[1]s ESCAPE '\\')", like(*filter.Search))
	}
	return f
}

func (r *blogRepository) FindAll(ctx context.Context, filter BlogFilter, limit, offset int) ([]*entity.BlogPost, error) {
	f := blogFilter(filter)
	pageClause, args := f.page(limit, offset)

	rows, err := r.db.Query(ctx, blogSelect+f.where()+` ORDER BY created_at DESC`+pageClause, args...)
	if err != nil {
		r.log.Error("Failed to list blog posts", zap.Error(err))
		return nil, fmt.Errorf("list blog posts: %w", err)
	}

	posts, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[entity.BlogPost])
	if err != nil {
		return nil, fmt.Errorf("scan blog rows: %w", err)
	}
	return posts, nil
}

func (r *blogRepository) Count(ctx context.Context, filter BlogFilter) (int64, error) {
	f := blogFilter(filter)

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM blog_posts`+f.where(), f.args...).Scan(&total); err != nil {
		r.log.Error("Failed to count blog posts", zap.Error(err))
		return 0, fmt.Errorf("count blog posts: %w", err)
	}
	return total, nil
}

func (r *blogRepository) Update(ctx context.Context, post *entity.BlogPost) error {
	query := `
		UPDATE blog_posts
		SET project_id = $2, title = $3, slug = $4, excerpt = $5, content = $6, featured_image_url = $7,
		    video_url = $8, author = $9, category = $10, published = $11, updated_at = $12
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		post.ID, post.ProjectID, post.Title, post.Slug, post.Excerpt, post.Content, post.FeaturedImageURL,
		post.VideoURL, post.Author, post.Category, post.Published, post.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update blog post", zap.Error(err), zap.String("post_id", post.ID.String()))
		return fmt.Errorf("update blog post %s: %w", post.ID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("blog post %s: %w", post.ID.String(), ErrNotFound)
	}
	return nil
}

func (r *blogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete blog post", zap.Error(err), zap.String("post_id", id.String()))
		return fmt.Errorf("delete blog post %s: %w", id.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("blog post %s: %w", id.String(), ErrNotFound)
	}
	return nil
}

func (r *blogRepository) IncrementViews(ctx context.Context, id uuid.UUID) (int, error) {
	var views int
	err := r.db.QueryRow(ctx, `UPDATE blog_posts SET views = views + 1 WHERE id = $1 RETURNING views`, id).Scan(&views)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("blog post %s: %w", id.String(), ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to increment blog views", zap.Error(err), zap.String("post_id", id.String()))
		return 0, fmt.Errorf("increment blog views %s: %w", id.String(), err)
	}
	return views, nil
}
