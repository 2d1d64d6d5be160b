package impl

import (
	"context"
	"log/slog"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(
	txManager repository.TransactionManager,
	categoryRepo repository.CategoryRepository,
	logger *slog.Logger,
) usecase.CategoryUsecase {
	return &categoryService{
		txManager:    txManager,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// CreateCategory creates a tree node with a caller-supplied unique slug.
func (srv *categoryService) CreateCategory(ctx context.Context, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	srv.logger.Info("Creating category", "slug", input.Slug)

	// 1. Reject a taken slug before touching the tree.
	taken, err := srv.categoryRepo.ExistsBySlug(ctx, input.Slug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check slug")
	}
	if taken {
		return nil, errors.Wrap(domainerrors.ErrCategorySlugTaken, "slug already exists")
	}

	// 2. The parent, when given, must exist.
	if input.ParentID != nil {
		if _, err := srv.categoryRepo.FindByID(ctx, *input.ParentID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return nil, errors.Wrap(domainerrors.ErrCategoryNotFound, "parent category not found")
			}

			return nil, errors.Wrap(err, "failed to find parent category")
		}
	}

	category := &entity.Category{
		Title:           input.Title,
		Slug:            input.Slug,
		Icon:            input.Icon,
		Description:     input.Description,
		ParentID:        input.ParentID,
		MetaTitle:       input.MetaTitle,
		MetaDescription: input.MetaDescription,
		MetaKeywords:    input.MetaKeywords,
		SortOrder:       input.SortOrder,
		IsActive:        true,
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		// Concurrent creations can still race the slug check.
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, errors.Wrap(domainerrors.ErrCategorySlugTaken, "slug already exists")
		}

		return nil, errors.Wrap(err, "failed to create category")
	}

	return category, nil
}

// UpdateCategory applies a partial update, refusing parent assignments that
// would turn the tree into a cycle.
func (srv *categoryService) UpdateCategory(ctx context.Context, id uint, input *usecase.UpdateCategoryInput) (*entity.Category, error) {
	srv.logger.Info("Updating category", "categoryID", id)

	if input.ParentID != nil {
		if err := srv.checkParentAssignment(ctx, id, *input.ParentID); err != nil {
			return nil, err
		}
	}

	category, err := srv.categoryRepo.Update(ctx, id, &repository.CategoryUpdate{
		Title:           input.Title,
		Icon:            input.Icon,
		Description:     input.Description,
		ParentID:        input.ParentID,
		ClearParent:     input.ClearParent,
		MetaTitle:       input.MetaTitle,
		MetaDescription: input.MetaDescription,
		MetaKeywords:    input.MetaKeywords,
		SortOrder:       input.SortOrder,
		IsActive:        input.IsActive,
	})
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCategoryNotFound, "category not found")
		}

		return nil, errors.Wrap(err, "failed to update category")
	}

	return category, nil
}

// checkParentAssignment verifies the new parent exists and is not the node
// itself or one of its descendants.
func (srv *categoryService) checkParentAssignment(ctx context.Context, id, parentID uint) error {
	if parentID == id {
		return errors.Wrap(domainerrors.ErrCategoryCycle, "category cannot be its own parent")
	}

	arena, err := srv.categoryRepo.ListActive(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load category tree")
	}

	parents := make(map[uint]*uint, len(arena))
	found := false
	for _, node := range arena {
		parents[node.ID] = node.ParentID
		if node.ID == parentID {
			found = true
		}
	}
	if !found {
		return errors.Wrap(domainerrors.ErrCategoryNotFound, "parent category not found")
	}

	// Walk up from the new parent; reaching the node means the assignment
	// would close a cycle.
	for cursor := parents[parentID]; cursor != nil; cursor = parents[*cursor] {
		if *cursor == id {
			return errors.Wrap(domainerrors.ErrCategoryCycle, "parent is a descendant of the category")
		}
	}

	return nil
}

// DeleteCategory removes an unused leaf. The usage check and the delete run
// in one transaction so a concurrent reference cannot slip in between.
func (srv *categoryService) DeleteCategory(ctx context.Context, id uint) (*entity.Category, error) {
	srv.logger.Info("Deleting category", "categoryID", id)

	var category *entity.Category

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.NewCategoryRepository()

		found, err := categoryRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return errors.Wrap(domainerrors.ErrCategoryNotFound, "category not found")
			}

			return errors.Wrap(err, "failed to find category")
		}

		usage, err := categoryRepo.CountUsage(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to count category usage")
		}
		if usage.Children > 0 {
			return errors.Wrap(domainerrors.ErrCategoryHasChildren, "category has subcategories")
		}
		if usage.Stores > 0 || usage.Products > 0 {
			return errors.Wrap(domainerrors.ErrCategoryInUse, "category is referenced by stores or products")
		}

		if err := categoryRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete category")
		}
		category = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete category")
	}

	return category, nil
}

// GetCategoryByID returns the category with direct parent and children.
func (srv *categoryService) GetCategoryByID(ctx context.Context, id uint) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCategoryNotFound, "category not found")
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return category, nil
}

// GetCategoryBySlug returns the category with direct parent and children.
func (srv *categoryService) GetCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCategoryNotFound, "category not found")
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return category, nil
}

// ListCategories returns the unpaginated full listing when neither page nor
// limit was supplied, a clamped page otherwise.
func (srv *categoryService) ListCategories(ctx context.Context, input *usecase.ListCategoriesInput) (*usecase.CategoryPage, error) {
	filter := repository.CategoryFilter{
		ParentID:  input.ParentID,
		RootsOnly: input.RootsOnly,
	}

	if input.Page == 0 && input.Limit == 0 {
		categories, err := srv.categoryRepo.ListAll(ctx, filter)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list categories")
		}

		return &usecase.CategoryPage{Categories: categories}, nil
	}

	page := repository.NewPagination(input.Page, input.Limit)

	categories, total, err := srv.categoryRepo.List(ctx, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}
	meta := repository.NewMeta(page, total)

	return &usecase.CategoryPage{Categories: categories, Meta: &meta}, nil
}

// GetRootCategories returns active roots with direct children attached.
func (srv *categoryService) GetRootCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.ListAll(ctx, repository.CategoryFilter{RootsOnly: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list root categories")
	}

	return categories, nil
}

// GetCategoryTree materializes active roots with two levels of children from
// a single flat read.
func (srv *categoryService) GetCategoryTree(ctx context.Context) ([]*entity.Category, error) {
	arena, err := srv.categoryRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load category tree")
	}

	// The arena is already ordered, so grouping preserves the listing order.
	children := make(map[uint][]*entity.Category, len(arena))
	var roots []*entity.Category
	for _, node := range arena {
		if node.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		children[*node.ParentID] = append(children[*node.ParentID], node)
	}

	for _, root := range roots {
		root.Children = children[root.ID]
		for _, child := range root.Children {
			child.Children = children[child.ID]
		}
	}

	return roots, nil
}
