package services

import (
	"context"
	"fmt"

	"stock-manager/internal/logger"
	"stock-manager/internal/models"
	"stock-manager/internal/store"
)

type Event interface{ Type() string }

// EventDispatcher receives an event after every successful write.
// Dispatch runs synchronously on the caller's goroutine.
type EventDispatcher interface{ Dispatch(event Event) error }

// InventoryService validates raw form input and applies it to the store.
type InventoryService struct {
	store      store.Store
	logger     logger.Logger
	dispatcher EventDispatcher
	strictIDs  bool
}

type Option func(*InventoryService)

// WithStrictIDs makes Update and Delete return models.ErrArticleNotFound
// when no row has the requested id.
func WithStrictIDs(strict bool) Option {
	return func(s *InventoryService) {
		s.strictIDs = strict
	}
}

func NewInventoryService(st store.Store, log logger.Logger, opts ...Option) *InventoryService {
	s := &InventoryService{
		store:  st,
		logger: log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetDispatcher installs the receiver of write events.
func (s *InventoryService) SetDispatcher(d EventDispatcher) {
	s.dispatcher = d
}

// Initialize ensures the backing table exists.
func (s *InventoryService) Initialize(ctx context.Context) error {
	return s.store.Init(ctx)
}

// Insert validates the raw fields and persists a new article.
func (s *InventoryService) Insert(ctx context.Context, name, price, quantity string) (models.Article, error) {
	parsed, err := models.ParseArticle(models.ArticleInput{Name: name, Price: price, Quantity: quantity})
	if err != nil {
		return models.Article{}, err
	}

	article, err := s.store.Insert(ctx, parsed.Name, parsed.Price, parsed.Quantity)
	if err != nil {
		return models.Article{}, fmt.Errorf("failed to store article: %w", err)
	}

	s.logger.Info("InventoryService", "article added", map[string]interface{}{
		"article_id": article.ID,
		"name":       article.Name,
	})
	s.dispatch(models.ArticleCreated{Article: article})

	return article, nil
}

// Update validates the raw fields and rewrites the article with the given id.
func (s *InventoryService) Update(ctx context.Context, id, name, price, quantity string) error {
	article, err := models.ParseExisting(models.ArticleInput{ID: id, Name: name, Price: price, Quantity: quantity})
	if err != nil {
		return err
	}

	n, err := s.store.Update(ctx, article)
	if err != nil {
		return fmt.Errorf("failed to update article: %w", err)
	}
	if n == 0 {
		if s.strictIDs {
			return fmt.Errorf("updating article %d: %w", article.ID, models.ErrArticleNotFound)
		}
		s.logger.Warning("InventoryService", "update matched no article", map[string]interface{}{
			"article_id": article.ID,
		})
	} else {
		s.logger.Info("InventoryService", "article updated", map[string]interface{}{
			"article_id": article.ID,
		})
	}

	s.dispatch(models.ArticleUpdated{Article: article, Matched: n > 0})
	return nil
}

// Delete removes the article with the given id.
func (s *InventoryService) Delete(ctx context.Context, id string) error {
	articleID, err := models.ParseID(id)
	if err != nil {
		return err
	}

	n, err := s.store.Delete(ctx, articleID)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	if n == 0 {
		if s.strictIDs {
			return fmt.Errorf("deleting article %d: %w", articleID, models.ErrArticleNotFound)
		}
		s.logger.Warning("InventoryService", "delete matched no article", map[string]interface{}{
			"article_id": articleID,
		})
	} else {
		s.logger.Info("InventoryService", "article deleted", map[string]interface{}{
			"article_id": articleID,
		})
	}

	s.dispatch(models.ArticleDeleted{ArticleID: articleID, Matched: n > 0})
	return nil
}

// ListAll returns every article in storage order.
func (s *InventoryService) ListAll(ctx context.Context) ([]models.Article, error) {
	articles, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	return articles, nil
}

func (s *InventoryService) dispatch(event Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Dispatch(event); err != nil {
		s.logger.Warning("InventoryService", "event dispatch failed", map[string]interface{}{
			"event": event.Type(),
			"error": err.Error(),
		})
	}
}
