/*
Package dna provides the small set of nucleotide-string utilities shared by
the overhang, fragment, and digest packages: complementing and reversing
raw base strings, and checking whether a string is a palindrome under
reverse-complementation.

Adapted from the teacher's transform.ReverseComplement and
checks.IsPalindromic (see DESIGN.md).
*/
package dna

import "strings"

// complement maps a base (and IUPAC ambiguity code) to its complement.
// N maps to N: an ambiguous base never resolves to a concrete complement.
// Overhang comparisons treat N as non-matching separately, through
// HasAmbiguous.
var complement = map[byte]byte{
	'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C', 'N': 'N', 'U': 'A',
	'R': 'Y', 'Y': 'R', 'S': 'S', 'W': 'W', 'K': 'M', 'M': 'K',
	'B': 'V', 'V': 'B', 'D': 'H', 'H': 'D',
	'a': 't', 't': 'a', 'c': 'g', 'g': 'c', 'n': 'n', 'u': 'a',
	'r': 'y', 'y': 'r', 's': 's', 'w': 'w', 'k': 'm', 'm': 'k',
	'b': 'v', 'v': 'b', 'd': 'h', 'h': 'd',
}

// Complement returns the base-by-base complement of sequence, preserving
// order (it does not reverse the string).
func Complement(sequence string) string {
	out := make([]byte, len(sequence))
	for i := 0; i < len(sequence); i++ {
		if c, ok := complement[sequence[i]]; ok {
			out[i] = c
		} else {
			out[i] = sequence[i]
		}
	}
	return string(out)
}

// Reverse returns sequence with its bytes in reverse order.
func Reverse(sequence string) string {
	out := make([]byte, len(sequence))
	for i := 0; i < len(sequence); i++ {
		out[i] = sequence[len(sequence)-1-i]
	}
	return string(out)
}

// ReverseComplement returns the reverse complement of sequence.
func ReverseComplement(sequence string) string {
	return Reverse(Complement(sequence))
}

// IsPalindromic reports whether sequence reads identically to its own
// reverse complement.
func IsPalindromic(sequence string) bool {
	return sequence == ReverseComplement(sequence)
}

// HasAmbiguous reports whether sequence contains any base outside A/C/G/T
// (case-insensitive) — used to treat N-containing overhangs as non-matching.
func HasAmbiguous(sequence string) bool {
	upper := strings.ToUpper(sequence)
	for i := 0; i < len(upper); i++ {
		switch upper[i] {
		case 'A', 'C', 'G', 'T':
			continue
		default:
			return true
		}
	}
	return false
}
