/*
Package operation copies directory trees.

	+-------------+      +-------------+
	|    walk     | ---> |   copier    |
	| (pre-order) |      | (dirs/files)|
	+-------------+      +------+------+
	                            |
	                     +------+------+
	                     |  metadata   |
	                     | (2nd pass)  |
	                     +-------------+

🎯 Purpose:
- Drive the walker over a source tree and mirror it under a destination
- Count what was copied
- Preserve permissions and mtimes once every byte is written

🔄 Flow:
1. Walk the source root with the caller's filter
2. Create or merge each directory, copy each regular file
3. Skip links and special files unless configured otherwise
4. Apply the recorded permissions, then mtimes, file by file
5. Return CopyStats, or the first fatal error

⚡ Error policy:
- Walk and content errors are fail-fast: the copy stops at the first one
- Metadata errors are collected across every file and returned together
- Nothing is rolled back; files written before a failure stay on disk

🤝 Interfaces:
- fsx.FS: the filesystem primitives, swappable in tests
- Observer: per-entry events for console output
- Operation / OperationRunner: run a copy synchronously or on a cancellable worker

🔍 Example:

	stats, err := operation.CopyTree(ctx, "src", "dst", operation.Options{
		Filter: func(rel string, kind walk.Kind) bool { return rel != "logs" },
	})
*/
package operation
