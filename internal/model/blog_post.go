package model

import (
	"encoding/json"
	"time"
)

// swagger:model BlogPost
type BlogPost struct {
	BaseModel
	Title         string          `gorm:"size:255;not null" json:"title"`
	Slug          string          `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Content       string          `gorm:"type:longtext;not null" json:"content"`
	Excerpt       string          `gorm:"type:text" json:"excerpt"`
	Author        string          `gorm:"size:100;default:'Path Finder Team'" json:"author"`
	Category      string          `gorm:"size:100;index;default:'Career Guidance'" json:"category"`
	ReadTime      string          `gorm:"size:50;default:'5 min read'" json:"readTime"`
	FeaturedImage string          `gorm:"size:512" json:"featuredImage,omitempty"`
	Tags          json.RawMessage `gorm:"type:json" json:"tags,omitempty"`
	Sections      json.RawMessage `gorm:"type:json" json:"sections,omitempty"`
	Attachments   json.RawMessage `gorm:"type:json" json:"attachments,omitempty"`
	SEO           json.RawMessage `gorm:"type:json" json:"seo,omitempty"`
	Featured      bool            `gorm:"default:false;index" json:"featured"`
	IsPublished   bool            `gorm:"default:false;index" json:"isPublished"`
	PublishedAt   *time.Time      `json:"publishedAt,omitempty"`
	Views         int             `gorm:"default:0" json:"views"`
	Likes         int             `gorm:"default:0" json:"likes"`
	Shares        int             `gorm:"default:0" json:"shares"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}

// BlogAttachment is the element shape stored in BlogPost.Attachments.
type BlogAttachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}
