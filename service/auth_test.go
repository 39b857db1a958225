package service

import (
	"context"
	"errors"
	"testing"

	"StudyHub/types"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	reg, err := env.auth.Register(ctx, &types.RegisterRequest{Username: "alice", Password: "secret123"})
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}
	if reg.UserID == 0 || reg.AccessToken == "" {
		t.Fatalf("注册响应不完整: %+v", reg)
	}

	login, err := env.auth.Login(ctx, &types.LoginRequest{Username: "alice", Password: "secret123"})
	if err != nil {
		t.Fatalf("登录失败: %v", err)
	}
	if login.UserID != reg.UserID {
		t.Fatalf("登录返回的用户不一致: %d != %d", login.UserID, reg.UserID)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.auth.Register(ctx, &types.RegisterRequest{Username: "alice", Password: "secret123"}); err != nil {
		t.Fatalf("注册失败: %v", err)
	}
	_, err := env.auth.Register(ctx, &types.RegisterRequest{Username: "alice", Password: "another"})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("期望 ErrUsernameTaken, 实际 %v", err)
	}
}

func TestLoginBadCredential(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.auth.Register(ctx, &types.RegisterRequest{Username: "alice", Password: "secret123"}); err != nil {
		t.Fatalf("注册失败: %v", err)
	}

	_, err := env.auth.Login(ctx, &types.LoginRequest{Username: "alice", Password: "wrong"})
	if !errors.Is(err, ErrBadCredential) {
		t.Fatalf("期望 ErrBadCredential, 实际 %v", err)
	}

	_, err = env.auth.Login(ctx, &types.LoginRequest{Username: "nobody", Password: "secret123"})
	if !errors.Is(err, ErrBadCredential) {
		t.Fatalf("期望 ErrBadCredential, 实际 %v", err)
	}
}
