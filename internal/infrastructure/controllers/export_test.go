package controllers

import "github.com/sethvargo/go-envconfig"

// SetLookuper replaces the environment lookuper for testing.
func (it *TriggerController) SetLookuper(lookuper envconfig.Lookuper) {
	it.lookuper = lookuper
}
