package service

import (
	"Nova/models"
	"Nova/pkg/response"
	"Nova/pkg/snowflake"
	"Nova/types"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateComment(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	ctx := context.Background()

	author := seedUser(t, db, "author")
	viewer := seedUser(t, db, "viewer")
	article := seedArticle(t, db, author.ID, time.Now())

	resp, err := svc.Create(ctx, viewer.ID, &types.CreateCommentRequest{
		TargetType: TargetArticle,
		TargetID:   article.ID,
		Content:    "first",
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)

	assert.Equal(t, int64(1), reloadArticle(t, db, article.ID).CommentCount)

	// 评论了别人的内容，作者应收到一条通知
	var count int64
	require.NoError(t, db.Model(&models.Notification{}).Where("user_id = ?", author.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateComment_TargetErrors(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	ctx := context.Background()
	viewer := seedUser(t, db, "viewer")

	_, err := svc.Create(ctx, viewer.ID, &types.CreateCommentRequest{
		TargetType: "video",
		TargetID:   1,
		Content:    "x",
	})
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 400, be.Code)

	_, err = svc.Create(ctx, viewer.ID, &types.CreateCommentRequest{
		TargetType: TargetArticle,
		TargetID:   12345,
		Content:    "x",
	})
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 404, be.Code)
}

func TestCommentContent_Trimmed(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	ctx := context.Background()

	author := seedUser(t, db, "author")
	article := seedArticle(t, db, author.ID, time.Now())

	resp, err := svc.Create(ctx, author.ID, &types.CreateCommentRequest{
		TargetType: TargetArticle,
		TargetID:   article.ID,
		Content:    "  hello  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "hello", reloadComment(t, db, resp.ID).Content)

	require.NoError(t, svc.Update(ctx, author.ID, resp.ID, "\tedited \n"))
	assert.Equal(t, "edited", reloadComment(t, db, resp.ID).Content)
}

func TestCreateReply(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	ctx := context.Background()

	author := seedUser(t, db, "author")
	viewer := seedUser(t, db, "viewer")
	article := seedArticle(t, db, author.ID, time.Now())
	other := seedArticle(t, db, author.ID, time.Now())

	parent, err := svc.Create(ctx, viewer.ID, &types.CreateCommentRequest{
		TargetType: TargetArticle,
		TargetID:   article.ID,
		Content:    "parent",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, viewer.ID, &types.CreateCommentRequest{
		TargetType: TargetArticle,
		TargetID:   article.ID,
		ParentID:   &parent.ID,
		Content:    "reply",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), reloadComment(t, db, parent.ID).ReplyCount)
	assert.Equal(t, int64(2), reloadArticle(t, db, article.ID).CommentCount)

	// 父评论属于另一个目标时拒绝
	_, err = svc.Create(ctx, viewer.ID, &types.CreateCommentRequest{
		TargetType: TargetArticle,
		TargetID:   other.ID,
		ParentID:   &parent.ID,
		Content:    "mismatch",
	})
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 400, be.Code)

	missing := uint64(999999)
	_, err = svc.Create(ctx, viewer.ID, &types.CreateCommentRequest{
		TargetType: TargetArticle,
		TargetID:   article.ID,
		ParentID:   &missing,
		Content:    "orphan",
	})
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 404, be.Code)
}

func seedComment(t *testing.T, db *gorm.DB, targetID, userID uint64, parentID *uint64, createdAt time.Time) *models.Comment {
	t.Helper()
	comment := &models.Comment{
		ID:         uint64(snowflake.GenID()),
		TargetType: TargetArticle,
		TargetID:   targetID,
		UserID:     userID,
		ParentID:   parentID,
		Content:    "c",
		CreatedAt:  createdAt,
	}
	require.NoError(t, db.Create(comment).Error)
	return comment
}

func TestListComments_TreeDepth(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	ctx := context.Background()

	author := seedUser(t, db, "author")
	viewer := seedUser(t, db, "viewer")
	article := seedArticle(t, db, author.ID, time.Now())

	// 七层链：顶级 + 6 层回复，第 6 层回复应被截断
	base := time.Now().Add(-time.Hour)
	chain := make([]*models.Comment, 0, 7)
	var parentID *uint64
	for i := 0; i < 7; i++ {
		c := seedComment(t, db, article.ID, viewer.ID, parentID, base.Add(time.Duration(i)*time.Minute))
		chain = append(chain, c)
		id := c.ID
		parentID = &id
	}

	result, err := svc.List(ctx, viewer.ID, TargetArticle, article.ID, "latest", 1, 20)
	require.NoError(t, err)
	require.Len(t, result.Items, 1)

	depth := 0
	node := result.Items[0]
	for node != nil {
		depth++
		assert.Equal(t, chain[depth-1].ID, node.ID)
		if len(node.Replies) == 0 {
			node = nil
			continue
		}
		require.Len(t, node.Replies, 1)
		node = node.Replies[0]
	}
	// 顶级 + 5 层回复
	assert.Equal(t, 6, depth)
}

func TestListComments_ReplyOrderAndLiked(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	ctx := context.Background()

	author := seedUser(t, db, "author")
	viewer := seedUser(t, db, "viewer")
	article := seedArticle(t, db, author.ID, time.Now())

	base := time.Now().Add(-time.Hour)
	top := seedComment(t, db, article.ID, author.ID, nil, base)
	late := seedComment(t, db, article.ID, author.ID, &top.ID, base.Add(10*time.Minute))
	early := seedComment(t, db, article.ID, author.ID, &top.ID, base.Add(time.Minute))

	_, err := svc.Like(ctx, viewer.ID, early.ID)
	require.NoError(t, err)

	result, err := svc.List(ctx, viewer.ID, TargetArticle, article.ID, "latest", 1, 20)
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	replies := result.Items[0].Replies
	require.Len(t, replies, 2)

	// 回复按创建时间升序挂在直接父节点下
	assert.Equal(t, early.ID, replies[0].ID)
	assert.Equal(t, late.ID, replies[1].ID)
	assert.True(t, replies[0].Liked)
	assert.False(t, replies[1].Liked)

	// 匿名查看者所有 liked 均为 false
	anon, err := svc.List(ctx, 0, TargetArticle, article.ID, "latest", 1, 20)
	require.NoError(t, err)
	assert.False(t, anon.Items[0].Replies[0].Liked)
}

func TestDeleteComment(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	ctx := context.Background()

	author := seedUser(t, db, "author")
	viewer := seedUser(t, db, "viewer")
	article := seedArticle(t, db, author.ID, time.Now())

	parent, err := svc.Create(ctx, viewer.ID, &types.CreateCommentRequest{
		TargetType: TargetArticle, TargetID: article.ID, Content: "parent",
	})
	require.NoError(t, err)
	reply, err := svc.Create(ctx, viewer.ID, &types.CreateCommentRequest{
		TargetType: TargetArticle, TargetID: article.ID, ParentID: &parent.ID, Content: "reply",
	})
	require.NoError(t, err)
	require.Equal(t, int64(2), reloadArticle(t, db, article.ID).CommentCount)

	require.NoError(t, svc.Delete(ctx, viewer.ID, reply.ID))
	assert.Equal(t, int64(1), reloadArticle(t, db, article.ID).CommentCount)
	assert.Equal(t, int64(0), reloadComment(t, db, parent.ID).ReplyCount)

	// 重复删除幂等，计数只扣一次
	require.NoError(t, svc.Delete(ctx, viewer.ID, reply.ID))
	assert.Equal(t, int64(1), reloadArticle(t, db, article.ID).CommentCount)
	assert.Equal(t, int64(0), reloadComment(t, db, parent.ID).ReplyCount)
}

func TestDeleteComment_Permissions(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	ctx := context.Background()

	author := seedUser(t, db, "author")
	viewer := seedUser(t, db, "viewer")
	stranger := seedUser(t, db, "stranger")
	article := seedArticle(t, db, author.ID, time.Now())

	comment, err := svc.Create(ctx, viewer.ID, &types.CreateCommentRequest{
		TargetType: TargetArticle, TargetID: article.ID, Content: "c",
	})
	require.NoError(t, err)

	err = svc.Delete(ctx, stranger.ID, comment.ID)
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 403, be.Code)

	// 目标作者也有删除权
	require.NoError(t, svc.Delete(ctx, author.ID, comment.ID))
	assert.Equal(t, int64(0), reloadArticle(t, db, article.ID).CommentCount)

	// 已删除的评论对无权限的人依然是 403，而不是幂等成功
	err = svc.Delete(ctx, stranger.ID, comment.ID)
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 403, be.Code)
}

func TestLikeUnlikeComment(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	ctx := context.Background()

	author := seedUser(t, db, "author")
	viewer := seedUser(t, db, "viewer")
	article := seedArticle(t, db, author.ID, time.Now())
	comment, err := svc.Create(ctx, author.ID, &types.CreateCommentRequest{
		TargetType: TargetArticle, TargetID: article.ID, Content: "c",
	})
	require.NoError(t, err)

	first, err := svc.Like(ctx, viewer.ID, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.LikeCount)
	assert.True(t, first.Liked)

	// 重复点赞不产生重复行
	again, err := svc.Like(ctx, viewer.ID, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), again.LikeCount)

	var rows int64
	require.NoError(t, db.Model(&models.Like{}).Where("target_type = ? AND target_id = ?", TargetComment, comment.ID).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)

	gone, err := svc.Unlike(ctx, viewer.ID, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), gone.LikeCount)
	assert.False(t, gone.Liked)

	// 再取消一次也安全
	gone, err = svc.Unlike(ctx, viewer.ID, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), gone.LikeCount)
}

func TestPinComment_Exclusive(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	ctx := context.Background()

	author := seedUser(t, db, "author")
	viewer := seedUser(t, db, "viewer")
	article := seedArticle(t, db, author.ID, time.Now())

	c1, err := svc.Create(ctx, viewer.ID, &types.CreateCommentRequest{
		TargetType: TargetArticle, TargetID: article.ID, Content: "one",
	})
	require.NoError(t, err)
	c2, err := svc.Create(ctx, viewer.ID, &types.CreateCommentRequest{
		TargetType: TargetArticle, TargetID: article.ID, Content: "two",
	})
	require.NoError(t, err)

	// 只有目标作者能置顶
	err = svc.Pin(ctx, viewer.ID, c1.ID)
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 403, be.Code)

	require.NoError(t, svc.Pin(ctx, author.ID, c1.ID))
	assert.True(t, reloadComment(t, db, c1.ID).IsPinned())

	// 重复置顶幂等
	require.NoError(t, svc.Pin(ctx, author.ID, c1.ID))

	// 换一条置顶，旧的必须让位
	require.NoError(t, svc.Pin(ctx, author.ID, c2.ID))
	assert.False(t, reloadComment(t, db, c1.ID).IsPinned())
	assert.True(t, reloadComment(t, db, c2.ID).IsPinned())

	var pinned int64
	require.NoError(t, db.Model(&models.Comment{}).
		Where("target_type = ? AND target_id = ? AND is_pinned = 1 AND deleted_at IS NULL", TargetArticle, article.ID).
		Count(&pinned).Error)
	assert.Equal(t, int64(1), pinned)

	require.NoError(t, svc.Unpin(ctx, author.ID, c2.ID))
	assert.False(t, reloadComment(t, db, c2.ID).IsPinned())
}
