package services

import (
	"sync"
)

// PushPayload 推给客户端的事件体
type PushPayload struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Pusher 实时推送通道。投递不保证送达，实现不得把失败向上抛。
// 聚合器和邀请服务通过构造参数拿到它，核心里没有全局单例。
type Pusher interface {
	Notify(userID uint, payload PushPayload)
}

// Hub 进程内推送实现：每个订阅者一条带缓冲的 channel，
// SSE 接口从这里取事件。发送非阻塞，订阅者跟不上就丢弃。
type Hub struct {
	mu          sync.RWMutex
	subscribers map[uint][]chan PushPayload
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[uint][]chan PushPayload),
	}
}

// Subscribe 为用户注册一条事件流，返回的 cancel 负责注销并关闭 channel
func (h *Hub) Subscribe(userID uint) (<-chan PushPayload, func()) {
	ch := make(chan PushPayload, 8)

	h.mu.Lock()
	h.subscribers[userID] = append(h.subscribers[userID], ch)
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		subs := h.subscribers[userID]
		for i, sub := range subs {
			if sub == ch {
				h.subscribers[userID] = append(subs[:i], subs[i+1:]...)
				close(ch)
				break
			}
		}
		if len(h.subscribers[userID]) == 0 {
			delete(h.subscribers, userID)
		}
	}
	return ch, cancel
}

// Notify 向用户的所有在线连接广播。channel 满了直接丢，不阻塞调用方。
func (h *Hub) Notify(userID uint, payload PushPayload) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subscribers[userID] {
		select {
		case ch <- payload:
		default:
		}
	}
}
