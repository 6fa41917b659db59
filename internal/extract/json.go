package extract

import (
	"github.com/pmeredith/dbscout/internal/jsonenc"
)

// Compact JSON document builders. Member order is part of the output
// contract, so records serialize through jsonenc value trees rather than
// struct marshaling; absent optional attributes serialize as null.

// EntitiesJSON builds the entities document.
func EntitiesJSON(entities []EntityRecord) string {
	list := make(jsonenc.Arr, 0, len(entities))
	for _, e := range entities {
		fields := make(jsonenc.Arr, 0, len(e.Fields))
		for _, f := range e.Fields {
			fields = append(fields, jsonenc.Obj{
				{Key: "name", Value: jsonenc.Str(f.Name)},
				{Key: "javaType", Value: jsonenc.Str(f.JavaType)},
				{Key: "column", Value: jsonenc.NullableStr(f.Column)},
				{Key: "nullable", Value: jsonenc.NullableBool(f.Nullable)},
				{Key: "length", Value: jsonenc.NullableInt(f.Length)},
				{Key: "unique", Value: jsonenc.NullableBool(f.Unique)},
			})
		}
		list = append(list, jsonenc.Obj{
			{Key: "name", Value: jsonenc.Str(e.Name)},
			{Key: "kind", Value: jsonenc.Str(e.Kind)},
			{Key: "table", Value: jsonenc.NullableStr(e.Table)},
			{Key: "idField", Value: jsonenc.NullableStr(e.IDField)},
			{Key: "fields", Value: fields},
		})
	}
	return jsonenc.Encode(jsonenc.Obj{{Key: "entities", Value: list}})
}

// RelationshipsJSON builds the relationships document.
func RelationshipsJSON(relations []RelationRecord) string {
	list := make(jsonenc.Arr, 0, len(relations))
	for _, r := range relations {
		cascade := jsonenc.Null
		if r.Cascade != nil {
			cascade = jsonenc.Strings(r.Cascade)
		}
		list = append(list, jsonenc.Obj{
			{Key: "source", Value: jsonenc.Str(r.Source)},
			{Key: "kind", Value: jsonenc.Str(r.Kind)},
			{Key: "target", Value: jsonenc.Str(r.Target)},
			{Key: "owningSide", Value: jsonenc.Bool(r.OwningSide)},
			{Key: "mappedBy", Value: jsonenc.NullableStr(r.MappedBy)},
			{Key: "cascade", Value: cascade},
			{Key: "fetch", Value: jsonenc.NullableStr(r.Fetch)},
			{Key: "optional", Value: jsonenc.NullableBool(r.Optional)},
			{Key: "orphanRemoval", Value: jsonenc.NullableBool(r.OrphanRemoval)},
			{Key: "joinColumn", Value: joinColumnJSON(r.JoinColumn)},
			{Key: "joinTable", Value: joinTableJSON(r.JoinTable)},
		})
	}
	return jsonenc.Encode(jsonenc.Obj{{Key: "relationships", Value: list}})
}

func joinColumnJSON(jc *JoinColumnRecord) jsonenc.Value {
	if jc == nil {
		return jsonenc.Null
	}
	return jsonenc.Obj{
		{Key: "name", Value: jsonenc.NullableStr(jc.Name)},
		{Key: "referencedColumnName", Value: jsonenc.NullableStr(jc.ReferencedColumnName)},
	}
}

func joinColumnsJSON(list []JoinColumnRecord) jsonenc.Value {
	if list == nil {
		return jsonenc.Null
	}
	arr := make(jsonenc.Arr, 0, len(list))
	for i := range list {
		arr = append(arr, joinColumnJSON(&list[i]))
	}
	return arr
}

func joinTableJSON(jt *JoinTableRecord) jsonenc.Value {
	if jt == nil {
		return jsonenc.Null
	}
	return jsonenc.Obj{
		{Key: "name", Value: jsonenc.NullableStr(jt.Name)},
		{Key: "joinColumns", Value: joinColumnsJSON(jt.JoinColumns)},
		{Key: "inverseJoinColumns", Value: joinColumnsJSON(jt.InverseJoinColumns)},
	}
}

// InteractionsJSON builds the db_interactions document.
func InteractionsJSON(r Report) string {
	repos := make(jsonenc.Arr, 0, len(r.Repositories))
	for _, repo := range r.Repositories {
		repos = append(repos, jsonenc.Obj{
			{Key: "name", Value: jsonenc.Str(repo.Name)},
			{Key: "kind", Value: jsonenc.Str(repo.Kind)},
			{Key: "extends", Value: jsonenc.Strings(repo.Extends)},
		})
	}
	interactions := make(jsonenc.Arr, 0, len(r.Interactions))
	for _, it := range r.Interactions {
		interactions = append(interactions, jsonenc.Obj{
			{Key: "site", Value: jsonenc.Str(it.Site)},
			{Key: "kind", Value: jsonenc.Str(it.Kind)},
			{Key: "api", Value: jsonenc.Str(it.API)},
			{Key: "method", Value: jsonenc.Str(it.Method)},
			{Key: "declaringType", Value: jsonenc.Str(it.DeclaringType)},
			{Key: "sqlLiteral", Value: jsonenc.NullableStr(it.SQLLiteral)},
			{Key: "notes", Value: jsonenc.NullableStr(it.Notes)},
		})
	}
	return jsonenc.Encode(jsonenc.Obj{
		{Key: "repositories", Value: repos},
		{Key: "transactionalSites", Value: jsonenc.Strings(r.TransactionalSites)},
		{Key: "interactions", Value: interactions},
	})
}
