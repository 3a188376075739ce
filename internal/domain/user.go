package domain

import "time"

const (
	RoleFarmer = "farmer"
	RoleAdmin  = "admin"
)

// FarmDetails 农场档案，嵌入 users 表
type FarmDetails struct {
	Location  string   `gorm:"size:191" json:"location"`
	Size      float64  `json:"size"` // 英亩
	CropTypes []string `gorm:"serializer:json" json:"cropTypes"`
	SoilType  string   `gorm:"size:64" json:"soilType"`
}

type User struct {
	ID             string      `gorm:"primaryKey;size:36" json:"id"`
	Email          string      `gorm:"uniqueIndex;size:191;not null" json:"email"`
	Name           string      `gorm:"size:64;not null" json:"name"`
	PasswordHash   string      `gorm:"size:100;not null" json:"-"`
	Role           string      `gorm:"size:16;not null;default:farmer" json:"role"`
	FarmDetails    FarmDetails `gorm:"embedded;embeddedPrefix:farm_" json:"farmDetails"`
	ProfilePicture string      `gorm:"size:255" json:"profilePicture"`
	IsActive       bool        `gorm:"not null;default:true" json:"isActive"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

func (User) TableName() string { return "users" }

// AnalysisRecord 土壤分析历史。只允许追加和翻转两个布尔位，永不删除。
type AnalysisRecord struct {
	ID                  string    `gorm:"primaryKey;size:36" json:"_id"`
	UserID              string    `gorm:"index;size:36;not null" json:"-"`
	Date                time.Time `gorm:"not null" json:"date"`
	IrrigationNeeded    bool      `gorm:"not null" json:"irrigation_needed"`
	FertilizationNeeded bool      `gorm:"not null" json:"fertilization_needed"`
	CreatedAt           time.Time `json:"-"`
}

func (AnalysisRecord) TableName() string { return "analysis_records" }

// YieldPrediction 产量预测历史，只追加。
type YieldPrediction struct {
	ID             string    `gorm:"primaryKey;size:36" json:"_id"`
	UserID         string    `gorm:"index;size:36;not null" json:"-"`
	Crop           string    `gorm:"size:64;not null" json:"crop"`
	PredictedYield float64   `gorm:"not null" json:"predictedYield"`
	Date           time.Time `gorm:"not null" json:"date"`
	FieldSize      *float64  `json:"fieldSize,omitempty"`
	Unit           *string   `gorm:"size:32" json:"unit,omitempty"`
}

func (YieldPrediction) TableName() string { return "yield_predictions" }

// AnalysisPatch 部分更新：nil 表示不改，显式 false 也会落库
type AnalysisPatch struct {
	IrrigationNeeded    *bool
	FertilizationNeeded *bool
}

type UserRepository interface {
	Create(u *User) error
	FindByID(id string) (*User, error)
	FindByEmail(email string) (*User, error)
	Update(u *User) error
	List(offset, limit int, q string) ([]User, int64, error)
	Deactivate(id string) error

	AppendAnalysis(userID string, rec *AnalysisRecord) error
	PatchAnalysis(userID, recordID string, patch AnalysisPatch) (*AnalysisRecord, error)
	ListAnalysis(userID string) ([]AnalysisRecord, error)

	AppendYieldPrediction(userID string, p *YieldPrediction) error
	ListYieldPredictions(userID string) ([]YieldPrediction, error)
}
