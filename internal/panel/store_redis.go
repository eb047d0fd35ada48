// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package panel

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/redherring/internal/platform/apperr"
	"github.com/taibuivan/redherring/internal/platform/constants"
)

// RedisStore keeps sessions in Redis so open panels survive a restart.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis backed store. A zero ttl keeps sessions
// until they are deleted.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

/*
Save writes the session under its key, resetting the inactivity window.

Parameters:
  - context: context.Context
  - session: *Session

Returns:
  - error: Encoding or connectivity errors
*/
func (repository *RedisStore) Save(context context.Context, session *Session) error {
	data, err := encode(session)
	if err != nil {
		return err
	}

	if err := repository.client.Set(context, sessionKey(session.ID), data, repository.ttl).Err(); err != nil {
		return apperr.Internal(fmt.Errorf("redis_session_set_failed: %w", err))
	}
	return nil
}

/*
Load reads a session and extends its inactivity window.

Returns:
  - *Session: Decoded session
  - error: apperr.Expired if the key is absent, connectivity errors otherwise
*/
func (repository *RedisStore) Load(context context.Context, id string) (*Session, error) {
	var command *redis.StringCmd
	if repository.ttl > 0 {
		command = repository.client.GetEx(context, sessionKey(id), repository.ttl)
	} else {
		command = repository.client.Get(context, sessionKey(id))
	}

	data, err := command.Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.Expired()
		}
		return nil, apperr.Internal(fmt.Errorf("redis_session_get_failed: %w", err))
	}
	return decode(data)
}

// Take reads and deletes a session with GETDEL, so a single caller wins.
func (repository *RedisStore) Take(context context.Context, id string) (*Session, error) {
	data, err := repository.client.GetDel(context, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.Expired()
		}
		return nil, apperr.Internal(fmt.Errorf("redis_session_getdel_failed: %w", err))
	}
	return decode(data)
}

// Delete removes a session; deleting an absent key is not an error.
func (repository *RedisStore) Delete(context context.Context, id string) error {
	if err := repository.client.Del(context, sessionKey(id)).Err(); err != nil {
		return apperr.Internal(fmt.Errorf("redis_session_del_failed: %w", err))
	}
	return nil
}

func sessionKey(id string) string {
	return constants.RedisPrefixSession + id
}
