package javasrc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveReferences(t *testing.T) {
	invoice := parse(t, `
package com.example.billing;

import javax.persistence.Entity;
import javax.persistence.Id;
import com.example.shared.*;

@Entity
public class Invoice {
    @Id
    private Long id;
    private Client client;
    private Money total;
    private String memo;
    private Unknown mystery;
}
`)
	invoice.Path = "Invoice.java"

	client := parse(t, `
package com.example.billing;

public class Client {}
`)
	client.Path = "Client.java"

	money := parse(t, `
package com.example.shared;

public class Money {}
`)
	money.Path = "Money.java"

	m := Resolve([]*File{invoice, client, money})
	require.Len(t, m.Types, 3)

	inv, ok := m.TypeByName("com.example.billing.Invoice")
	require.True(t, ok)

	// Explicit imports resolve annotation names.
	assert.Equal(t, "javax.persistence.Entity", inv.Annos[0].Name)
	assert.Equal(t, "javax.persistence.Id", inv.Fields[0].Annos[0].Name)

	// Long and String fall back to java.lang, Client resolves through the
	// same package, Money through the wildcard import, and Unknown keeps
	// the name it was written with.
	fieldTypes := map[string]string{}
	for _, f := range inv.Fields {
		fieldTypes[f.Name] = f.Type.Name
	}
	assert.Equal(t, map[string]string{
		"id":      "java.lang.Long",
		"client":  "com.example.billing.Client",
		"total":   "com.example.shared.Money",
		"memo":    "java.lang.String",
		"mystery": "Unknown",
	}, fieldTypes)
}

func TestResolveUniqueSimpleName(t *testing.T) {
	user := parse(t, `
package com.example.user;

public class UserEntity {}
`)
	service := parse(t, `
package com.example.svc;

public class UserService {
    private UserEntity user;
}
`)

	m := Resolve([]*File{user, service})
	svc, ok := m.TypeByName("com.example.svc.UserService")
	require.True(t, ok)
	assert.Equal(t, "com.example.user.UserEntity", svc.Fields[0].Type.Name)
}

func TestResolveAmbiguousSimpleNameKept(t *testing.T) {
	a := parse(t, `
package com.a;

public class Token {}
`)
	b := parse(t, `
package com.b;

public class Token {}
`)
	c := parse(t, `
package com.c;

public class Holder {
    private Token token;
}
`)

	m := Resolve([]*File{a, b, c})
	holder, ok := m.TypeByName("com.c.Holder")
	require.True(t, ok)
	assert.Equal(t, "Token", holder.Fields[0].Type.Name)
}

func TestResolveGenericsAndArrays(t *testing.T) {
	item := parse(t, `
package com.example;

public class Item {}
`)
	order := parse(t, `
package com.example;

import java.util.List;

public class Order {
    private List<Item> items;
    private Item[] sorted;
}
`)

	m := Resolve([]*File{item, order})
	o, ok := m.TypeByName("com.example.Order")
	require.True(t, ok)

	items := o.Fields[0].Type
	assert.Equal(t, "java.util.List", items.Name)
	require.Len(t, items.TypeArgs, 1)
	assert.Equal(t, "com.example.Item", items.TypeArgs[0].Name)

	// Array dimensions survive resolution of the element type.
	assert.Equal(t, "com.example.Item[]", o.Fields[1].Type.Name)
}

func TestResolveCallDeclaringTypes(t *testing.T) {
	svc := parse(t, `
package com.example;

import javax.persistence.EntityManager;

class BillingService {
    private EntityManager em;

    void settle() {
        em.persist(this);
    }
}
`)

	m := Resolve([]*File{svc})
	b, ok := m.TypeByName("com.example.BillingService")
	require.True(t, ok)
	require.Len(t, b.Methods[0].Calls, 1)
	assert.Equal(t, "javax.persistence.EntityManager", b.Methods[0].Calls[0].DeclaringType.Name)
}
