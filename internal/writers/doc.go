// Package writers turns ranked primer pairs into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (TSV, pretty blocks, JSON/JSONL).
//   - core/design stays domain-only; designapp stays orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
