// Package infonet composes information networks: directed graphs describing
// whom a person trusts as a source of risk awareness.
//
// Compose blends two contact layers over the same population. Each direction
// u→v of a physical contact is kept with probability 1-q, each direction of
// a virtual (online) contact with probability q. Directions are drawn
// independently, so a mutual contact may become a one-way channel.
//
//	info, err := infonet.Compose(physical, virtual, 0.3, infonet.WithSeed(7))
//
// Compose only reads its inputs and is independent of package epidemic.
package infonet
