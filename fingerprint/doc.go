// Package fingerprint derives deterministic content fingerprints for
// computed schedules.
//
// What:
//
//   - Result encodes a schedule.Result with canonical CBOR (RFC 8949
//     Core Deterministic Encoding: sorted map keys, smallest integer
//     forms, no indefinite-length items) and hashes the bytes with
//     keyed BLAKE3 under an ASCII domain key.
//   - Hash is the 32-byte digest with hex Format/Parse helpers.
//
// Why:
//
//   - The engine is pure: identical inputs yield identical outputs, so a
//     fingerprint is a cheap equality witness for caller-side caching,
//     memoization and change detection across recomputations.
//   - Keyed hashing gives domain separation: the same bytes hashed in
//     another context can never collide with a schedule fingerprint.
//
// Complexity: O(size of the encoded result).
package fingerprint
