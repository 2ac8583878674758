/*
Package config loads treecopy job files.

	            +-------------+
	            |   Config    |
	            |  (copies)   |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   JSON   | |   HCL    |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Reads a list of copy jobs from .yaml, .json or .hcl
- Resolves relative paths against the file's directory
- Validates paths, globs and option combinations
- Turns each job into operation.Options

📝 Example (YAML):

	copies:
	  - name: docs
	    source: ./docs
	    destination: ./site/docs
	    exclude: ["*.tmp", "drafts"]
	    options:
	      copy_symlinks: true

📝 Example (HCL):

	copy "docs" {
	  source      = "./docs"
	  destination = "${env.OUT}/docs"
	  exclude     = ["*.tmp"]
	}
*/
package config
