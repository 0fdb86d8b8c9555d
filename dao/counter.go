package dao

import (
	"fmt"

	"gorm.io/gorm"
)

// 计数列闭集，所有计数增减只允许走这里列出的列
const (
	ColLikeCount     = "like_count"
	ColCommentCount  = "comment_count"
	ColFavoriteCount = "favorite_count"
	ColReplyCount    = "reply_count"
	ColUpvoteCount   = "upvote_count"
	ColDownvoteCount = "downvote_count"
	ColAnswerCount   = "answer_count"
	ColFollowCount   = "follow_count"
	ColViewCount     = "view_count"
)

var counterColumns = map[string]struct{}{
	ColLikeCount:     {},
	ColCommentCount:  {},
	ColFavoriteCount: {},
	ColReplyCount:    {},
	ColUpvoteCount:   {},
	ColDownvoteCount: {},
	ColAnswerCount:   {},
	ColFollowCount:   {},
	ColViewCount:     {},
}

// AdjustCounter 在调用方事务内对内容行的计数列做相对增减，下限为 0。
// 每一次关联行的插入/删除必须配对调用一次，不允许在读路径重算。
func AdjustCounter(tx *gorm.DB, owner any, id uint64, column string, delta int64) error {
	if _, ok := counterColumns[column]; !ok {
		return fmt.Errorf("unknown counter column: %s", column)
	}
	expr := fmt.Sprintf("CASE WHEN %s + ? < 0 THEN 0 ELSE %s + ? END", column, column)
	return tx.Model(owner).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(expr, delta, delta)).
		Error
}

// ReadCounter 读取内容行上某个计数列的当前值，变更提交后用它回填响应
func ReadCounter(db *gorm.DB, owner any, id uint64, column string) (int64, error) {
	if _, ok := counterColumns[column]; !ok {
		return 0, fmt.Errorf("unknown counter column: %s", column)
	}
	var value int64
	err := db.Model(owner).Select(column).Where("id = ?", id).Scan(&value).Error
	return value, err
}
