package port

import "context"

// CountryLocator resolves a best-guess country code for the caller.
type CountryLocator interface {
	LocateCountry(ctx context.Context) (string, error)
}

// CountryLocatorFactory binds a locator to a caller address.
type CountryLocatorFactory interface {
	Locator(ip string) CountryLocator
}
