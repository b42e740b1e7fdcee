package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContextDefaultsToAnonymous(t *testing.T) {
	p := FromContext(context.Background())
	assert.True(t, p.IsAnonymous())
	assert.False(t, p.IsAdmin())
	assert.False(t, p.HasConsumerOrg())
}

func TestPrincipalRoundTrip(t *testing.T) {
	ctx := WithPrincipal(context.Background(), &Principal{
		UserID:         1,
		ConsumerOrgURL: "/orgs/a",
		Permissions:    []string{PermissionEditAnyApplication},
	})
	p := FromContext(ctx)
	assert.True(t, p.IsAdmin())
	assert.True(t, p.HasConsumerOrg())
	assert.True(t, p.HasPermission(PermissionEditAnyApplication))
	assert.False(t, p.HasPermission("administer site"))
}
