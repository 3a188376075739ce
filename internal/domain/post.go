package domain

import "time"

// 帖子分类，闭集
const (
	CategoryPestControl = "pest-control"
	CategorySoilHealth  = "soil-health"
	CategoryIrrigation  = "irrigation"
	CategoryCrops       = "crops"
	CategoryEquipment   = "equipment"
	CategoryGeneral     = "general"
)

var PostCategories = []string{
	CategoryPestControl, CategorySoilHealth, CategoryIrrigation,
	CategoryCrops, CategoryEquipment, CategoryGeneral,
}

func ValidCategory(c string) bool {
	for _, v := range PostCategories {
		if v == c {
			return true
		}
	}
	return false
}

type PostLink struct {
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// PostAuthor 作者快照：建帖时从当前档案复制，之后档案变更不回写（快照语义）
type PostAuthor struct {
	UserID   string `gorm:"index;size:36;not null" json:"userId"`
	Name     string `gorm:"size:64;not null" json:"name"`
	Farm     string `gorm:"size:191" json:"farm"`
	Location string `gorm:"size:191" json:"location"`
}

type Comment struct {
	ID        string    `gorm:"primaryKey;size:36" json:"_id"`
	PostID    string    `gorm:"index;size:36;not null" json:"-"`
	UserID    string    `gorm:"size:36" json:"userId"`
	UserName  string    `gorm:"size:64" json:"userName"`
	Text      string    `gorm:"type:text" json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Comment) TableName() string { return "post_comments" }

type CommunityPost struct {
	ID        string     `gorm:"primaryKey;size:36" json:"_id"`
	Author    PostAuthor `gorm:"embedded;embeddedPrefix:author_" json:"author"`
	Title     string     `gorm:"size:191;not null" json:"title"`
	Content   string     `gorm:"type:text;not null" json:"content"`
	Category  string     `gorm:"size:32;not null;index" json:"category"`
	Links     []PostLink `gorm:"serializer:json" json:"links"`
	Likes     int        `gorm:"not null;default:0" json:"likes"`
	Tags      []string   `gorm:"serializer:json" json:"tags"`
	Comments  []Comment  `gorm:"foreignKey:PostID" json:"comments"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (CommunityPost) TableName() string { return "community_posts" }

// PostPatch 作者更新帖子：nil 字段不动
type PostPatch struct {
	Title    *string
	Content  *string
	Category *string
	Links    *[]PostLink
	Tags     *[]string
}

type PostFilter struct {
	Category string // "all" 或空表示不过滤
	Search   string
	Page     int
	Limit    int
}

type PostRepository interface {
	Create(p *CommunityPost) error
	FindByID(id string) (*CommunityPost, error)
	List(f PostFilter) ([]CommunityPost, int64, error)
	Update(p *CommunityPost) error
	Delete(id string) error
	AddComment(c *Comment) error
	Like(id string) (int, error)
}
