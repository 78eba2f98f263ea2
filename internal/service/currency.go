package service

import (
	"slices"

	"github.com/samber/lo"
	"golang.org/x/text/currency"
)

func (c *converterService) AvailableCurrencies() []string {
	c.currenciesOnce.Do(func() {
		c.currencies = tenderCurrencies()
	})

	return c.currencies
}

// tenderCurrencies returns codes of all currencies which are legal tender in some region today.
func tenderCurrencies() []string {
	var codes []string

	iter := currency.Query()
	for iter.Next() {
		codes = append(codes, iter.Unit().String())
	}

	codes = lo.Uniq(codes)
	slices.Sort(codes)

	return codes
}
