package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
)

const (
	ChannelCommentEvents = "cmt_events"
)

// 事件类型
const (
	EventTypeReply = "reply"
)

// CommentEvent 评论事件，经 Redis 广播后由各 server 实例推给在线用户
type CommentEvent struct {
	Type       string `json:"type"`
	UserID     int64  `json:"user_id"` // 接收人
	FromUserID int64  `json:"from_user_id"`
	FromNick   string `json:"from_nick"`
	CmtID      int64  `json:"cmt_id"`
	BoardID    int64  `json:"board_id"`
	Preview    string `json:"preview,omitempty"` // 正文摘要
}

// Publisher Redis 发布者
type Publisher struct {
	client *redis.Client
}

// NewPublisher 创建发布者
func NewPublisher(client *redis.Client) *Publisher {
	return &Publisher{client: client}
}

// PublishCommentEvent 发布评论事件
func (p *Publisher) PublishCommentEvent(ctx context.Context, event *CommentEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal comment event: %w", err)
	}

	return p.client.Publish(ctx, ChannelCommentEvents, data).Err()
}

// Subscriber Redis 订阅者
type Subscriber struct {
	client *redis.Client
}

// NewSubscriber 创建订阅者
func NewSubscriber(client *redis.Client) *Subscriber {
	return &Subscriber{client: client}
}

// Subscribe 订阅评论事件，阻塞直到 ctx 取消
func (s *Subscriber) Subscribe(ctx context.Context, handler func(*CommentEvent)) error {
	pubsub := s.client.Subscribe(ctx, ChannelCommentEvents)
	defer pubsub.Close()

	ch := pubsub.Channel()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}

			var event CommentEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				continue // 忽略解析错误
			}

			handler(&event)
		}
	}
}
