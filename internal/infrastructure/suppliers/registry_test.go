package suppliers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dropship/backend/internal/domain/supplier"
	"github.com/dropship/backend/internal/infrastructure/config"
)

// fakeConnector lets registry tests observe the connect sequence without a
// real provider behind it.
type fakeConnector struct {
	supplier.Connector

	authErr       error
	authenticated bool
	closed        bool
}

func (f *fakeConnector) Authenticate(_ context.Context) error {
	if f.authErr != nil {
		return f.authErr
	}
	f.authenticated = true
	return nil
}

func (f *fakeConnector) Close() error {
	f.closed = true
	return nil
}

func TestNewDefaultRegistry_CoversAllProviders(t *testing.T) {
	r := NewDefaultRegistry(&config.Config{}, zap.NewNop())

	for _, code := range []supplier.ProviderCode{
		supplier.ProviderCodeAliExpress,
		supplier.ProviderCodeCJDropshipping,
		supplier.ProviderCodePrintful,
		supplier.ProviderCodeBigBuy,
	} {
		assert.True(t, r.IsRegistered(code), code.String())
	}
	assert.Len(t, r.Codes(), 4)
}

func TestNewDefaultRegistry_BuildsLoggerFromConfig(t *testing.T) {
	cfg := &config.Config{
		Log: config.LogConfig{Level: "debug", Format: "json", Output: "stdout"},
	}

	r := NewDefaultRegistry(cfg, nil)
	require.NotNil(t, r)
	assert.Len(t, r.Codes(), 4)

	// Builders inherit the constructed logger and stay usable.
	conn, err := r.builders[supplier.ProviderCodeBigBuy](supplier.Credentials{APIKey: "key"})
	require.NoError(t, err)
	assert.Equal(t, supplier.ProviderCodeBigBuy, conn.ProviderCode())
	require.NoError(t, conn.Close())
}

// The credential-to-config mapping must be exhaustive per provider: each
// builder rejects a bundle missing its required fields and accepts a full one.
func TestDefaultRegistry_BuilderCredentialMapping(t *testing.T) {
	r := NewDefaultRegistry(&config.Config{}, zap.NewNop())

	tests := []struct {
		name    string
		code    supplier.ProviderCode
		good    supplier.Credentials
		bad     supplier.Credentials
		wantErr error
	}{
		{
			name:    "aliexpress needs key and secret",
			code:    supplier.ProviderCodeAliExpress,
			good:    supplier.Credentials{APIKey: "app-key", APISecret: "app-secret"},
			bad:     supplier.Credentials{APIKey: "app-key"},
			wantErr: ErrAliExpressConfigMissingAppSecret,
		},
		{
			name:    "cjdropshipping needs email and api key",
			code:    supplier.ProviderCodeCJDropshipping,
			good:    supplier.Credentials{Email: "a@b.c", APIKey: "key"},
			bad:     supplier.Credentials{APIKey: "key"},
			wantErr: ErrCJConfigMissingEmail,
		},
		{
			name:    "printful needs a token",
			code:    supplier.ProviderCodePrintful,
			good:    supplier.Credentials{AccessToken: "token"},
			bad:     supplier.Credentials{},
			wantErr: ErrPrintfulConfigMissingToken,
		},
		{
			name:    "bigbuy needs an api key",
			code:    supplier.ProviderCodeBigBuy,
			good:    supplier.Credentials{APIKey: "key"},
			bad:     supplier.Credentials{},
			wantErr: ErrBigBuyConfigMissingAPIKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builder := r.builders[tt.code]
			require.NotNil(t, builder)

			conn, err := builder(tt.good)
			require.NoError(t, err)
			assert.Equal(t, tt.code, conn.ProviderCode())
			require.NoError(t, conn.Close())

			_, err = builder(tt.bad)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDefaultRegistry_PrintfulTokenFallsBackToAPIKey(t *testing.T) {
	r := NewDefaultRegistry(&config.Config{}, zap.NewNop())

	conn, err := r.builders[supplier.ProviderCodePrintful](supplier.Credentials{APIKey: "legacy-key"})
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, supplier.ProviderCodePrintful, conn.ProviderCode())
}

func TestRegistry_Connect_UnknownProvider(t *testing.T) {
	r := NewRegistry(zap.NewNop())

	_, err := r.Connect(context.Background(), supplier.ProviderCode("SPOCKET"), supplier.Credentials{})
	assert.ErrorIs(t, err, supplier.ErrProviderNotRegistered)
}

func TestRegistry_Connect_AuthenticatesBeforeHandover(t *testing.T) {
	fake := &fakeConnector{}
	r := NewRegistry(zap.NewNop())
	r.Register("FAKE", func(_ supplier.Credentials) (supplier.Connector, error) {
		return fake, nil
	})

	conn, err := r.Connect(context.Background(), "FAKE", supplier.Credentials{})
	require.NoError(t, err)
	assert.Same(t, fake, conn)
	assert.True(t, fake.authenticated)
	assert.False(t, fake.closed)
}

func TestRegistry_Connect_ClosesOnAuthFailure(t *testing.T) {
	fake := &fakeConnector{authErr: supplier.ErrAuthFailed}
	r := NewRegistry(zap.NewNop())
	r.Register("FAKE", func(_ supplier.Credentials) (supplier.Connector, error) {
		return fake, nil
	})

	_, err := r.Connect(context.Background(), "FAKE", supplier.Credentials{})
	assert.ErrorIs(t, err, supplier.ErrAuthFailed)
	assert.True(t, fake.closed, "a connector that failed to authenticate is released")
}

func TestRegistry_Connect_BuilderFailure(t *testing.T) {
	boom := errors.New("bad credential bundle")
	r := NewRegistry(zap.NewNop())
	r.Register("FAKE", func(_ supplier.Credentials) (supplier.Connector, error) {
		return nil, boom
	})

	_, err := r.Connect(context.Background(), "FAKE", supplier.Credentials{})
	assert.ErrorIs(t, err, boom)
}

func TestRegistry_Register_NilBuilderIgnored(t *testing.T) {
	r := NewRegistry(zap.NewNop())
	r.Register("FAKE", nil)
	assert.False(t, r.IsRegistered("FAKE"))
}
