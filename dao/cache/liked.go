package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// 用户点赞过的评论集合
	userLikedCommentsKey = "user:liked:comments:%d"

	likedTTL = 30 * time.Minute
)

// LikedCache 评论点赞状态的旁路缓存，未命中回源数据库。
// 写入失败不影响业务，由调用方记日志。
type LikedCache struct {
	rdb *redis.Client
}

func NewLikedCache(rdb *redis.Client) *LikedCache {
	return &LikedCache{rdb: rdb}
}

// IsLiked 第二个返回值表示缓存是否命中
func (c *LikedCache) IsLiked(ctx context.Context, userID, commentID uint64) (bool, bool) {
	if c == nil || c.rdb == nil {
		return false, false
	}
	key := fmt.Sprintf(userLikedCommentsKey, userID)
	exists, err := c.rdb.SIsMember(ctx, key, commentID).Result()
	if err != nil {
		return false, false
	}
	return exists, exists
}

func (c *LikedCache) Add(ctx context.Context, userID, commentID uint64) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	key := fmt.Sprintf(userLikedCommentsKey, userID)
	pipe := c.rdb.Pipeline()
	pipe.SAdd(ctx, key, commentID)
	pipe.Expire(ctx, key, likedTTL)
	_, err := pipe.Exec(ctx)
	return err
}

func (c *LikedCache) Remove(ctx context.Context, userID, commentID uint64) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	key := fmt.Sprintf(userLikedCommentsKey, userID)
	return c.rdb.SRem(ctx, key, commentID).Err()
}
