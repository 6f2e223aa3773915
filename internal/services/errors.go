package services

import (
	"errors"
)

// 服务层错误分为三类：NotFound、前置条件失败、余额转移半途失败。
// 所有前置检查都在第一次写库之前完成，命中这些错误时不会有任何变更落库
// （ErrPartialTransfer 除外，见 balance.go）。
var (
	ErrPostNotFound   = errors.New("post not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrAuthorNotFound = errors.New("post author not found")
	ErrSystemAccount  = errors.New("system account not found")
	ErrInviteNotFound = errors.New("invite not found")

	ErrSelfVote            = errors.New("cannot vote on your own post")
	ErrSelfTip             = errors.New("cannot tip yourself")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrNotPostOwner        = errors.New("not the post owner")
	ErrInviteLimit         = errors.New("invite limit exceeded")
	ErrAlreadyInvited      = errors.New("this person is already invited")
	ErrUserExists          = errors.New("user already exists")
	ErrInviteToken         = errors.New("invalid or expired invite token")

	// 转出已成功但转入失败，已转出的部分不自动回滚，交由对账处理
	ErrPartialTransfer = errors.New("balance transfer partially applied")
)
