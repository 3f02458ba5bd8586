// Package membership models organization membership: who belongs to an
// organization, with what role, and whether the membership is still a pending
// join request. It also carries the bootstrap repair rule that keeps every
// organization administrable when its last admin disappears.
package membership
