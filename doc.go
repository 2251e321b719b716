// Package huffman decodes Huffman-coded byte streams whose tree is not
// stored alongside the data.  The tree is rebuilt deterministically from a
// table of per-symbol frequency counts, and the packed payload is then
// walked bit by bit, most significant bit first.
//
// A payload consists of a decimal ASCII bit count, exactly one separator
// byte, and the packed bits:
//
//     "9\n" 0x89 0x80
//
// The frequency table is a raw sequence of bytes, one per symbol starting at
// symbol 0, where each byte is that symbol's count.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
