// Package headless applies a YAML script of list operations to an item
// store without any interaction, for batch edits, cron jobs and seeding a
// list from another tool.
//
// A script is an ordered list of add, update and remove operations:
//
//	continue_on_error: false
//	verbosity: normal
//	operations:
//	  - op: add
//	    text: buy milk
//	  - op: update
//	    index: 0
//	    text: buy oat milk
//	  - op: remove
//	    index: 1
//
// Operations run in order against the live store, so each index refers to
// positions after the previous operation has been applied. A bad index
// stops the run unless continue_on_error is set.
//
// Example usage:
//
//	script, err := headless.LoadScript("cleanup.yaml")
//	if err != nil {
//	    return err
//	}
//	executor, err := headless.NewExecutor(store, script)
//	if err != nil {
//	    return err
//	}
//	result, err := executor.Run(ctx)
package headless
