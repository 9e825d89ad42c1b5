package storage

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	redisKeyPrefix    = "wsm:store:"
	redisEventChannel = "wsm:store:events"
)

// RedisStore é o driver para execução com mais de uma instância: as chaves
// vivem no Redis e alterações são propagadas via pub/sub, de modo que outra
// instância observa a escrita (análogo do evento de storage entre abas).
// A instância que escreve descarta as próprias mensagens.
type RedisStore struct {
	client     *redis.Client
	ctx        context.Context
	instanceID string
	pubsub     *redis.PubSub

	mu   sync.Mutex
	subs []func(key string)
}

func NewRedisStore(addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("erro ao conectar ao Redis: %w", err)
	}

	s := &RedisStore{
		client:     client,
		ctx:        ctx,
		instanceID: uuid.New().String(),
	}

	s.pubsub = client.Subscribe(ctx, redisEventChannel)
	go s.listen()

	return s, nil
}

// listen consome o canal de eventos e repassa alterações de outras
// instâncias aos observadores locais.
func (s *RedisStore) listen() {
	for msg := range s.pubsub.Channel() {
		origin, key, found := strings.Cut(msg.Payload, " ")
		if !found || origin == s.instanceID {
			continue
		}

		s.mu.Lock()
		subs := make([]func(key string), len(s.subs))
		copy(subs, s.subs)
		s.mu.Unlock()

		for _, fn := range subs {
			fn(key)
		}
	}
}

func (s *RedisStore) publish(key string) {
	payload := s.instanceID + " " + key
	if err := s.client.Publish(s.ctx, redisEventChannel, payload).Err(); err != nil {
		logrus.WithError(err).Warnf("Erro ao publicar alteração da chave %s", key)
	}
}

func (s *RedisStore) Get(key string) ([]byte, error) {
	data, err := s.client.Get(s.ctx, redisKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a chave %s: %w", key, err)
	}

	return data, nil
}

func (s *RedisStore) Set(key string, value []byte) error {
	if err := s.client.Set(s.ctx, redisKeyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("erro ao gravar a chave %s: %w", key, err)
	}

	s.publish(key)
	return nil
}

func (s *RedisStore) Delete(key string) error {
	if err := s.client.Del(s.ctx, redisKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("erro ao remover a chave %s: %w", key, err)
	}

	s.publish(key)
	return nil
}

func (s *RedisStore) Keys() ([]string, error) {
	full, err := s.client.Keys(s.ctx, redisKeyPrefix+"*").Result()
	if err != nil {
		return nil, fmt.Errorf("erro ao listar chaves: %w", err)
	}

	keys := make([]string, 0, len(full))
	for _, k := range full {
		keys = append(keys, strings.TrimPrefix(k, redisKeyPrefix))
	}

	return keys, nil
}

func (s *RedisStore) Subscribe(fn func(key string)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subs = append(s.subs, fn)
}

func (s *RedisStore) Close() error {
	if err := s.pubsub.Close(); err != nil {
		return err
	}
	return s.client.Close()
}
