package usecase

import (
	"context"
	"strings"

	"realty-backend/internal/data/entity"
	"realty-backend/internal/data/repository"
	"realty-backend/internal/dto/request"
	"realty-backend/internal/dto/response"
	"realty-backend/pkg/apperror"
	"realty-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultBlogAuthor   = "NationNineRealty"
	defaultBlogCategory = "Real Estate"
)

// BlogQuery carries the raw list filters from the query string.
type BlogQuery struct {
	ProjectID *string
	Search    *string
}

// BlogService manages blog posts. Posts are addressed by slug.
type BlogService interface {
	List(ctx context.Context, req *request.PaginatedRequest, query BlogQuery, staff bool) (*response.PaginatedResponse[response.BlogPostResponse], error)
	GetBySlug(ctx context.Context, slug string, staff bool) (*response.BlogPostResponse, error)
	Create(ctx context.Context, req *request.BlogPostRequest) (*response.BlogPostResponse, error)
	Update(ctx context.Context, slug string, req *request.BlogPostUpdateRequest) (*response.BlogPostResponse, error)
	Delete(ctx context.Context, slug string) error
}

type blogService struct {
	repo repository.BlogRepository
	now  Clock
	log  *zap.Logger
}

func NewBlogService(repo repository.BlogRepository, now Clock, log *zap.Logger) BlogService {
	return &blogService{repo: repo, now: now, log: log.With(zap.String("service", "blog"))}
}

func (s *blogService) List(ctx context.Context, req *request.PaginatedRequest, query BlogQuery, staff bool) (*response.PaginatedResponse[response.BlogPostResponse], error) {
	projectID, err := parseOptionalID(query.ProjectID, "project")
	if err != nil {
		return nil, err
	}
	filter := repository.BlogFilter{
		ProjectID:     projectID,
		Search:        query.Search,
		PublishedOnly: !staff,
	}

	posts, err := s.repo.FindAll(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		return nil, storeError(s.log, "list blog posts", "Blog post", err)
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, storeError(s.log, "count blog posts", "Blog post", err)
	}
	return response.NewPaginatedResponse(response.MapSlice(posts, response.BlogPostToResponse), req.Page, req.Limit(), total), nil
}

func (s *blogService) find(ctx context.Context, slug string) (*entity.BlogPost, error) {
	post, err := s.repo.FindBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return nil, storeError(s.log, "get blog post", "Blog post", err)
	}
	if post == nil {
		return nil, notFound("Blog post")
	}
	return post, nil
}

func (s *blogService) GetBySlug(ctx context.Context, slug string, staff bool) (*response.BlogPostResponse, error) {
	post, err := s.find(ctx, slug)
	if err != nil {
		return nil, err
	}
	// draft tidak terlihat untuk publik
	if !post.Published && !staff {
		return nil, notFound("Blog post")
	}

	views, err := s.repo.IncrementViews(ctx, post.ID)
	if err != nil {
		s.log.Warn("Failed to increment blog views", zap.String("slug", post.Slug), zap.Error(err))
	} else {
		post.Views = views
	}

	resp := response.BlogPostToResponse(post)
	return &resp, nil
}

func (s *blogService) Create(ctx context.Context, req *request.BlogPostRequest) (*response.BlogPostResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	projectID, err := parseOptionalID(req.ProjectID, "project")
	if err != nil {
		return nil, err
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = utils.Slugify(req.Title)
	}
	if slug == "" {
		return nil, apperror.ValidationFields(map[string]string{"slug": "Could not derive a slug from the title"})
	}

	now := s.now()
	post := &entity.BlogPost{
		BaseNoDelete:     entity.BaseNoDelete{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		ProjectID:        projectID,
		Title:            strings.TrimSpace(req.Title),
		Slug:             slug,
		Excerpt:          req.Excerpt,
		Content:          req.Content,
		FeaturedImageURL: req.FeaturedImageURL,
		VideoURL:         req.VideoURL,
		Author:           defaultBlogAuthor,
		Category:         defaultBlogCategory,
		Published:        true,
	}
	if req.Author != "" {
		post.Author = req.Author
	}
	if req.Category != "" {
		post.Category = req.Category
	}
	setIf(&post.Published, req.Published)

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, storeError(s.log, "create blog post", "Blog post", err)
	}
	s.log.Info("Blog post created", zap.String("slug", post.Slug))
	resp := response.BlogPostToResponse(post)
	return &resp, nil
}

func (s *blogService) Update(ctx context.Context, slug string, req *request.BlogPostUpdateRequest) (*response.BlogPostResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	post, err := s.find(ctx, slug)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.ProjectID != nil {
		projectID, err := parseOptionalID(req.ProjectID, "project")
		if err != nil {
			return nil, err
		}
		post.ProjectID = projectID
		updated = true
	}
	updated = setIf(&post.Title, req.Title) || updated
	updated = setIf(&post.Slug, req.Slug) || updated
	updated = setIf(&post.Excerpt, req.Excerpt) || updated
	updated = setIf(&post.Content, req.Content) || updated
	updated = setIf(&post.FeaturedImageURL, req.FeaturedImageURL) || updated
	updated = setIf(&post.VideoURL, req.VideoURL) || updated
	updated = setIf(&post.Author, req.Author) || updated
	updated = setIf(&post.Category, req.Category) || updated
	updated = setIf(&post.Published, req.Published) || updated

	if updated {
		post.UpdatedAt = s.now()
		if err := s.repo.Update(ctx, post); err != nil {
			return nil, storeError(s.log, "update blog post", "Blog post", err)
		}
	}
	resp := response.BlogPostToResponse(post)
	return &resp, nil
}

func (s *blogService) Delete(ctx context.Context, slug string) error {
	post, err := s.find(ctx, slug)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, post.ID); err != nil {
		return storeError(s.log, "delete blog post", "Blog post", err)
	}
	s.log.Info("Blog post deleted", zap.String("slug", post.Slug))
	return nil
}
