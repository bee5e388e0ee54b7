// Package mapping loads and validates enrichment declarations kept in YAML.
//
// Declarations normally live next to the query code as struct literals. A
// declaration file lets operators add or override them per query method
// without rebuilding:
//
//	version: "1"
//	queries:
//	  - method: JobMapper.findByUserId
//	    entity: Job
//	    enrich:
//	      - column: dept_id
//	        property: deptName
//	        select: DeptService.findNameById
//	      - column: create_by
//	        property: creatorName
//	        select: UserService.findNicknameById
//	  - method: JobMapper.selectById
//	    entity: Job
//	    # a single descriptor may be written without the list
//	    enrich:
//	      column: dept_id
//	      property: deptName
//	      select: DeptService.findNameById
//
// # Validation
//
// Validate checks a file against the accessor and lookup registries the
// process was built with, so a typo in a column or lookup reference is found
// at start-up rather than logged once per row. Descriptors are still applied
// best effort at runtime.
package mapping
