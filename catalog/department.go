package catalog

// DepartmentRaw is one deptList response row.
type DepartmentRaw struct {
	DeptCode string `json:"dept_code"`
	Name     string `json:"name"`
}

// Department is a department offering courses.
type Department struct {
	DeptCode string
	Name     string
}

// ParseDepartment converts a raw department row into its domain form.
func ParseDepartment(raw DepartmentRaw) (Department, error) {
	return Department{
		DeptCode: raw.DeptCode,
		Name:     raw.Name,
	}, nil
}
