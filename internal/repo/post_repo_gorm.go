package repo

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"smartfarm-api/internal/domain"
)

type PostRepo struct{ db *gorm.DB }

func NewPostRepo(db *gorm.DB) *PostRepo { return &PostRepo{db: db} }

var _ domain.PostRepository = (*PostRepo)(nil)

func (r *PostRepo) Create(p *domain.CommunityPost) error { return r.db.Create(p).Error }

func (r *PostRepo) FindByID(id string) (*domain.CommunityPost, error) {
	var p domain.CommunityPost
	err := r.db.Preload("Comments", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("created_at asc")
	}).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *PostRepo) List(f domain.PostFilter) ([]domain.CommunityPost, int64, error) {
	tx := r.db.Model(&domain.CommunityPost{})

	if f.Category != "" && f.Category != "all" {
		tx = tx.Where("category = ?", f.Category)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		// 大小写不敏感子串匹配：标题 / 内容 / 作者名，OR 组合
		like := "%" + strings.ToLower(s) + "%"
		tx = tx.Where(
			"LOWER(title) LIKE ? OR LOWER(content) LIKE ? OR LOWER(author_name) LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	posts := make([]domain.CommunityPost, 0)
	err := tx.Preload("Comments", func(q *gorm.DB) *gorm.DB {
		return q.Order("created_at asc")
	}).Order("created_at desc").
		Offset((page - 1) * limit).Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *PostRepo) Update(p *domain.CommunityPost) error {
	// Save 不会动 Comments 关联，评论只通过 AddComment 追加
	return r.db.Omit("Comments").Save(p).Error
}

func (r *PostRepo) Delete(id string) error {
	if err := r.db.Where("post_id = ?", id).Delete(&domain.Comment{}).Error; err != nil {
		return err
	}
	res := r.db.Where("id = ?", id).Delete(&domain.CommunityPost{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PostRepo) AddComment(c *domain.Comment) error { return r.db.Create(c).Error }

// Like 单条 SQL 自增，点赞并发不丢计数；不去重（同一用户可重复点赞）
func (r *PostRepo) Like(id string) (int, error) {
	res := r.db.Model(&domain.CommunityPost{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + ?", 1))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	var likes int
	err := r.db.Model(&domain.CommunityPost{}).
		Where("id = ?", id).
		Pluck("likes", &likes).Error
	return likes, err
}
