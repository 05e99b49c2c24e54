// Package hashes guesses the digest algorithm of a hexadecimal string from its
// length: 32 characters is MD5, 40 SHA1, 56 SHA224, 64 SHA256, 96 SHA384 and
// 128 SHA512. Upper and lower case hex are both accepted.
//
// Only the shape is checked. Any hex string of the right length is reported
// as that algorithm; there is no way to tell a real digest from random hex.
// Input is matched exactly as given, without trimming.
package hashes
