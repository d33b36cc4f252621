// Package kernel provides three interchangeable element-wise float32
// addition kernels over buffer.Buffer values.
//
//   - Scalar: one element at a time.
//   - VectorizedUnaligned: batches of BatchWidth lanes with unaligned vector
//     loads and stores, scalar remainder.
//   - VectorizedAligned: the same batching with aligned vector loads and
//     stores. Inputs and output MUST start on an Alignment-byte boundary; this
//     precondition is not checked.
//
// All variants compute output[i] = a[i] + b[i] in IEEE-754 single precision
// and agree bit for bit on finite inputs. Inputs are never mutated.
package kernel
