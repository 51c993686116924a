// Package order provides domain entities and business logic for the order
// lifecycle of the grocery storefront. It implements the Order aggregate
// root, the Builder that constructs it at checkout, and the status and
// payment-status state machines that govern it afterwards.
//
// The package includes:
//   - Order: The aggregate root holding the priced, frozen purchase record
//   - Builder: Chained-setter construction with validation at Build time
//   - Status / PaymentStatus: State machines enforcing legal transitions
//   - Item: A priced order line, frozen at cart pricing time
//   - DeliveryAddress: The validated delivery destination
//
// Key business rules:
//   - total == subtotal + delivery fee, and subtotal == sum of item subtotals
//   - Status follows pending -> confirmed -> preparing -> out_for_delivery
//     -> delivered one step at a time; cancelled only from pending/confirmed
//   - A completed payment confirms a pending order; a failed payment cancels
//     a pending or confirmed order
//   - Orders are created once and never rebuilt; all later change is a
//     status or payment transition
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
