package rbac

// Default portal policy. Employees answer assessments and file feedback;
// managers see their department's responses and work the feedback queue;
// HR owns assessments and the directory.
var RolePermissions = map[string][]string{
	"employee": {
		"assessment:view",
		"response:create",
		"response:save",
		"response:submit",
		"response:view-own",
		"feedback:create",
	},
	"manager": {
		"assessment:view",
		"response:create",
		"response:save",
		"response:submit",
		"response:view-own",
		"response:view-all",
		"feedback:*",
	},
	"hr": {
		"assessment:*",
		"response:*",
		"feedback:*",
		"department:*",
		"users:*",
	},
	"admin": {
		"*", // everything
	},
}
