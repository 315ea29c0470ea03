package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/teostudio/catalog/internal/models"
	"github.com/teostudio/catalog/internal/shared"
)

// NewsRepository implements models.Repository[*models.NewsArticle] for the news archive.
type NewsRepository struct {
	db *sql.DB
}

// NewNewsRepository creates a new NewsRepository with the given database connection
func NewNewsRepository(db *sql.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

// Create inserts a new [models.NewsArticle] into the database
func (r *NewsRepository) Create(article *models.NewsArticle) error {
	sequence, err := NextSequence(r.db, "news_articles")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	if article.ID == "" {
		article.ID = shared.GenerateID()
	}

	if err := article.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	query := `
		INSERT INTO news_articles (id, sequence, title, date, summary, body, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query, article.ID, sequence, article.Title, article.Date, article.Summary, article.Body, now, now)
	if err != nil {
		return fmt.Errorf("failed to insert article: %w", err)
	}

	return nil
}

// Get retrieves an article by ID, excluding soft-deleted articles
func (r *NewsRepository) Get(id string) (*models.NewsArticle, error) {
	query := `
		SELECT id, title, date, summary, body
		FROM news_articles
		WHERE id = ? AND deleted_at IS NULL
	`

	article := &models.NewsArticle{}
	err := r.db.QueryRow(query, id).Scan(&article.ID, &article.Title, &article.Date, &article.Summary, &article.Body)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("article not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan article: %w", err)
	}

	return article, nil
}

// Update modifies an existing article in the database
func (r *NewsRepository) Update(article *models.NewsArticle) error {
	if err := article.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		UPDATE news_articles
		SET title = ?, date = ?, summary = ?, body = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, article.Title, article.Date, article.Summary, article.Body, time.Now(), article.ID)
	if err != nil {
		return fmt.Errorf("failed to update article: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("article not found or already deleted: %s", article.ID)
	}

	return nil
}

// Delete soft-deletes an article by ID
func (r *NewsRepository) Delete(id string) error {
	query := `
		UPDATE news_articles
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("article not found or already deleted: %s", id)
	}

	return nil
}

// List retrieves all articles ordered newest first, excluding soft-deleted articles
func (r *NewsRepository) List(criteria map[string]any) ([]*models.NewsArticle, error) {
	query := `
		SELECT id, title, date, summary, body
		FROM news_articles
		WHERE deleted_at IS NULL
		ORDER BY date DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer rows.Close()

	var articles []*models.NewsArticle
	for rows.Next() {
		article := &models.NewsArticle{}
		if err := rows.Scan(&article.ID, &article.Title, &article.Date, &article.Summary, &article.Body); err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, article)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return articles, nil
}
