package models

import "gorm.io/gorm"

type Comment struct {
	gorm.Model

	Text string `gorm:"column:text;type:text"`

	// Comments hang off exactly one post and one author; they are looked up
	// by post_id at render time rather than held as object links
	AuthorID uint `gorm:"column:author_id;index"`
	PostID   uint `gorm:"column:post_id;index"`

	// For loading alongside the comment
	Author User `gorm:"foreignKey:AuthorID"`
}
