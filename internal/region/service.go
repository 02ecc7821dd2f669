package region

import "context"

// CountryResolver supplies a country code for an IP address.
// Implemented by geo.Resolver; faked in tests.
type CountryResolver interface {
	Country(ctx context.Context, ip string) string
}

// Service resolves a visitor's Region from their IP. The resolver is an
// explicit constructor dependency so initialization order and test
// isolation stay visible; there is no ambient global region state.
type Service struct {
	resolver CountryResolver
}

// NewService constructs a Service. A nil resolver is a wiring bug and
// fails fast instead of silently handing out defaults.
func NewService(resolver CountryResolver) *Service {
	if resolver == nil {
		panic("region: nil CountryResolver")
	}
	return &Service{resolver: resolver}
}

// Resolve returns the Region for the visitor at ip.
// Resolution is fail-open end to end: the worst case is the US default.
func (s *Service) Resolve(ctx context.Context, ip string) Region {
	return RegionFor(s.resolver.Country(ctx, ip))
}
