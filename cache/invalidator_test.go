package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"
)

type counterMock struct {
	mock.Mock
}

func (c *counterMock) Incr(ctx context.Context, key string) (int64, error) {
	args := c.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

func TestRedisInvalidatorIncrementsEveryTag(t *testing.T) {
	c := &counterMock{}
	c.On("Incr", mock.Anything, "cachetag:consumerorg:a").Return(int64(2), nil).Once()
	c.On("Incr", mock.Anything, "cachetag:consumerorg:b").Return(int64(1), nil).Once()

	inv := NewRedisInvalidator(zaptest.NewLogger(t), c)
	err := inv.InvalidateTags(context.Background(), "consumerorg:a", "consumerorg:b")
	assert.NoError(t, err)
	c.AssertExpectations(t)
}

func TestRedisInvalidatorStopsOnError(t *testing.T) {
	c := &counterMock{}
	c.On("Incr", mock.Anything, "cachetag:a").Return(int64(0), errors.New("down")).Once()

	inv := NewRedisInvalidator(zaptest.NewLogger(t), c)
	err := inv.InvalidateTags(context.Background(), "a", "b")
	assert.Error(t, err)
	c.AssertNotCalled(t, "Incr", mock.Anything, "cachetag:b")
}

func TestNoopInvalidator(t *testing.T) {
	assert.NoError(t, NoopInvalidator{}.InvalidateTags(context.Background(), "x"))
}
