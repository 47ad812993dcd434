package models

import "gorm.io/gorm"

type BlogPost struct {
	gorm.Model

	// Post content
	Title    string `gorm:"column:title;uniqueIndex"` // headline, globally unique
	Subtitle string `gorm:"column:subtitle"`
	Date     string `gorm:"column:date"` // display date, stamped at creation and never changed
	Body     string `gorm:"column:body;type:text"`
	ImgURL   string `gorm:"column:img_url"` // header image

	// Authorship; editing a post reassigns it to the editor
	AuthorID uint `gorm:"column:author_id;index"`

	// For loading alongside the post
	Author User `gorm:"foreignKey:AuthorID"`
}
