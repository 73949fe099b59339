// Package status finds local branches that exist nowhere on a remote.
//
// A local branch counts as pushed when its head commit is the head of some
// remote-tracking branch, or when it is an ancestor of one (ahead == 0). The
// second case covers branches that were merged upstream after which the
// remote moved on. Everything else is reported as unpushed.
//
// [Detect] inspects one repository; [DetectAll] inspects many in parallel and
// returns results in input order, with per-repository failures stored on the
// result instead of aborting the batch.
package status
