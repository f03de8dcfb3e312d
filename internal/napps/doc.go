// Package napps models Kytos network applications ("NApps") as seen by the
// local command-line tools.
//
// A NApp is identified by an author/name pair. On disk a NApp may be
// installed (present in the install registry) and, independently, enabled
// (linked into the enabled directory). This package provides:
//
//   - NApp identity parsing and validation (author/name)
//   - Resolution of the install and enabled directories from the
//     configuration store, persisting defaults on first use
//   - Status classification (IE, ID) and the plain-text status report
//   - The Manager contract implemented by the filesystem manager in
//     package local
package napps
