package publisher

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/fortuna/depthsheets/internal/store"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishRun(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	run := &store.Run{
		RunID:      "5f0c6a8e-2b7d-4c1e-9a3f-0d9b8e7c6a51",
		SeasonType: store.SeasonRegular,
		Week:       2,
		SeasonYear: 2025,
		GameCount:  2,
		Files:      []string{"W02_ARI_at_CAR.txt", "W02_KC_at_PHI.txt"},
		CreatedAt:  time.Date(2025, 9, 10, 12, 0, 0, 0, time.UTC),
	}

	pub := NewRedisStreamPublisher(client)
	require.NoError(t, pub.PublishRun(ctx, run))

	msgs, err := client.XRange(ctx, RunStream, "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, msgs, 1)

	values := msgs[0].Values
	assert.Equal(t, run.RunID, values["run_id"])
	assert.NotEmpty(t, values["timestamp"])

	data, ok := values["data"].(string)
	require.True(t, ok)
	var got store.Run
	require.NoError(t, json.Unmarshal([]byte(data), &got))
	assert.Equal(t, run.Files, got.Files)
	assert.Equal(t, run.Week, got.Week)
	assert.True(t, run.CreatedAt.Equal(got.CreatedAt))
}
