package repo

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"smartfarm-api/internal/domain"
)

// ErrEmailTaken 唯一索引冲突归一化后的哨兵错误
var ErrEmailTaken = errors.New("email already registered")

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

var _ domain.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) Create(u *domain.User) error {
	if err := r.db.Create(u).Error; err != nil {
		if isDupKey(err) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *UserRepo) FindByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepo) FindByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepo) Update(u *domain.User) error {
	if err := r.db.Save(u).Error; err != nil {
		if isDupKey(err) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *UserRepo) List(offset, limit int, q string) ([]domain.User, int64, error) {
	tx := r.db.Model(&domain.User{})
	if s := strings.TrimSpace(q); s != "" {
		like := "%" + s + "%"
		tx = tx.Where("email LIKE ? OR name LIKE ?", like, like)
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []domain.User
	if err := tx.Order("created_at desc").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepo) Deactivate(id string) error {
	res := r.db.Model(&domain.User{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ---------- 分析历史：追加 / 布尔位修补，无删除路径 ----------

func (r *UserRepo) AppendAnalysis(userID string, rec *domain.AnalysisRecord) error {
	rec.UserID = userID
	return r.db.Create(rec).Error
}

func (r *UserRepo) PatchAnalysis(userID, recordID string, patch domain.AnalysisPatch) (*domain.AnalysisRecord, error) {
	var rec domain.AnalysisRecord
	// 按 user_id 限定，跨用户不可寻址
	err := r.db.First(&rec, "id = ? AND user_id = ?", recordID, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if patch.IrrigationNeeded != nil {
		rec.IrrigationNeeded = *patch.IrrigationNeeded
		updates["irrigation_needed"] = rec.IrrigationNeeded
	}
	if patch.FertilizationNeeded != nil {
		rec.FertilizationNeeded = *patch.FertilizationNeeded
		updates["fertilization_needed"] = rec.FertilizationNeeded
	}
	if len(updates) == 0 {
		return &rec, nil
	}
	if err := r.db.Model(&domain.AnalysisRecord{}).
		Where("id = ? AND user_id = ?", recordID, userID).
		Updates(updates).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *UserRepo) ListAnalysis(userID string) ([]domain.AnalysisRecord, error) {
	records := make([]domain.AnalysisRecord, 0)
	err := r.db.Where("user_id = ?", userID).Order("created_at asc").Find(&records).Error
	return records, err
}

// ---------- 预测历史：只追加 ----------

func (r *UserRepo) AppendYieldPrediction(userID string, p *domain.YieldPrediction) error {
	p.UserID = userID
	return r.db.Create(p).Error
}

func (r *UserRepo) ListYieldPredictions(userID string) ([]domain.YieldPrediction, error) {
	preds := make([]domain.YieldPrediction, 0)
	err := r.db.Where("user_id = ?", userID).Order("date asc").Find(&preds).Error
	return preds, err
}

func isDupKey(err error) bool {
	// 不依赖 gorm.ErrDuplicatedKey，避免驱动差异
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
