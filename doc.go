// Package huffstat computes empirical entropy statistics for finite texts and
// builds the matching minimum-redundancy (Huffman) prefix codes, so that the
// achieved average codeword length can be compared against the entropy bound.
// It is an analysis library, not a codec: no bitstream is packed or unpacked.
//
// References:
//
//     Huffman, "A Method for the Construction of Minimum-Redundancy Codes",
//     Proceedings of the IRE, 1952
//
//     <https://en.wikipedia.org/wiki/Entropy_(information_theory)>
//
package huffstat
