package ast

// NodeToMap converts an AST node to a map suitable for JSON serialization.
// This produces a tagged-union structure: every node has a "kind" field.
func NodeToMap(node Node) map[string]interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	// ---- Expressions ----
	case *LiteralExpr:
		return m("LiteralExpr", n.Line,
			"type", n.Value.TypeName(),
			"value", n.Value.String())
	case *GroupingExpr:
		return m("GroupingExpr", n.Line, "expr", NodeToMap(n.Expression))
	case *UnaryExpr:
		return m("UnaryExpr", n.Line,
			"op", n.Operator.Kind.String(),
			"right", NodeToMap(n.Right))
	case *BinaryExpr:
		return m("BinaryExpr", n.Line,
			"op", n.Operator.Kind.String(),
			"left", NodeToMap(n.Left),
			"right", NodeToMap(n.Right))
	case *VariableExpr:
		return m("VariableExpr", n.Line, "name", n.Name.Lexeme)
	case *AssignExpr:
		return m("AssignExpr", n.Line,
			"name", n.Name.Lexeme,
			"value", NodeToMap(n.Value))

	// ---- Statements ----
	case *ExprStmt:
		return m("ExprStmt", n.Line, "expr", NodeToMap(n.Expression))
	case *PrintStmt:
		return m("PrintStmt", n.Line, "expr", NodeToMap(n.Expression))
	case *VarDeclStmt:
		result := m("VarDeclStmt", n.Line, "name", n.Name.Lexeme)
		if n.Initializer != nil {
			result["init"] = NodeToMap(n.Initializer)
		}
		return result
	case *BlockStmt:
		return m("BlockStmt", n.Line, "stmts", stmtSlice(n.Stmts))

	default:
		return map[string]interface{}{"kind": "Unknown"}
	}
}

// ---- helpers ----

// m builds a map with kind, line, and extra key-value pairs.
func m(kind string, line int, kvs ...interface{}) map[string]interface{} {
	result := map[string]interface{}{
		"kind": kind,
		"line": line,
	}
	for i := 0; i+1 < len(kvs); i += 2 {
		key := kvs[i].(string)
		result[key] = kvs[i+1]
	}
	return result
}

func stmtSlice(stmts []Stmt) []interface{} {
	result := make([]interface{}, len(stmts))
	for i, s := range stmts {
		result[i] = NodeToMap(s)
	}
	return result
}
