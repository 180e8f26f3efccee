// Package capgains computes realized capital gains from a ledger of buy and
// sell trades, matching each sell against the oldest open lots of the same
// asset first (FIFO).
//
// The core functionalities are:
//   - Loading: decoding CSV or JSON trade files into a chronological Ledger,
//     rejecting malformed rows with a MalformedTradeError naming the file and
//     the row.
//   - Matching: a Matcher keeps one queue of open lots per asset. Buys open
//     lots, sells consume them oldest first, splitting the last lot touched.
//   - Replay: Replay folds the ledger into a Journal of disposals. A sell
//     exceeding the open lots stops the replay with an InsufficientLotsError.
//   - Reporting: the Journal is filtered by period into GainsReport values,
//     as many times as needed, and summed up per financial year.
//   - Persistence: reports are saved as CSV or JSON lines, and trade report
//     workbooks are extracted to CSV trade files.
//
// Amounts are exact decimals; they are only rounded for display.
package capgains
